package wav_test

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"testing"
	"time"

	"github.com/lessonlabs/slidekit/pkg/wav"

	gowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

func samplePCM(n int) []byte {
	pcm := make([]byte, n*2)

	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(i*31))
	}

	return pcm
}

func TestEncodeHeader(t *testing.T) {
	pcm := samplePCM(1200)

	data := wav.Encode(pcm)

	require.Len(t, data, 44+len(pcm))

	require.Equal(t, "RIFF", string(data[0:4]))
	require.Equal(t, "WAVE", string(data[8:12]))
	require.Equal(t, "fmt ", string(data[12:16]))
	require.Equal(t, "data", string(data[36:40]))

	require.EqualValues(t, 36+len(pcm), binary.LittleEndian.Uint32(data[4:8]))

	require.EqualValues(t, 1, binary.LittleEndian.Uint16(data[20:22]), "format must be linear PCM")
	require.EqualValues(t, 1, binary.LittleEndian.Uint16(data[22:24]), "channel count")
	require.EqualValues(t, 24000, binary.LittleEndian.Uint32(data[24:28]), "sample rate")
	require.EqualValues(t, 48000, binary.LittleEndian.Uint32(data[28:32]), "byte rate")
	require.EqualValues(t, 2, binary.LittleEndian.Uint16(data[32:34]), "block align")
	require.EqualValues(t, 16, binary.LittleEndian.Uint16(data[34:36]), "bits per sample")

	require.EqualValues(t, len(pcm), binary.LittleEndian.Uint32(data[40:44]), "data chunk length")
}

func TestEncodeRoundTrip(t *testing.T) {
	pcm := samplePCM(2400)

	data := wav.Encode(pcm)

	decoder := gowav.NewDecoder(bytes.NewReader(data))

	buf, err := decoder.FullPCMBuffer()
	require.NoError(t, err)

	require.EqualValues(t, 24000, decoder.SampleRate)
	require.EqualValues(t, 1, decoder.NumChans)
	require.EqualValues(t, 16, decoder.BitDepth)

	require.Len(t, buf.Data, 2400)

	for i, sample := range buf.Data {
		want := int(int16(binary.LittleEndian.Uint16(pcm[i*2:])))
		require.Equal(t, want, sample, "sample %d", i)
	}
}

func TestEncodeEmpty(t *testing.T) {
	data := wav.Encode(nil)

	require.Len(t, data, 44)
	require.EqualValues(t, 0, binary.LittleEndian.Uint32(data[40:44]))
}

func TestEncodeBase64(t *testing.T) {
	pcm := samplePCM(100)

	data, err := wav.EncodeBase64(base64.StdEncoding.EncodeToString(pcm))
	require.NoError(t, err)
	require.Equal(t, wav.Encode(pcm), data)

	_, err = wav.EncodeBase64("not base64!!!")
	require.Error(t, err)
}

func TestDuration(t *testing.T) {
	require.Equal(t, time.Second, wav.Duration(samplePCM(24000)))
	require.Equal(t, 500*time.Millisecond, wav.Duration(samplePCM(12000)))
	require.Equal(t, time.Duration(0), wav.Duration(nil))
}
