// Package wav wraps raw speech samples in a playable WAV container.
//
// Speech backends return bare 16-bit linear PCM at 24 kHz mono. The
// header is computed from that fixed format and the payload length -
// there is no format sniffing.
package wav

import (
	"encoding/base64"
	"encoding/binary"
	"time"
)

const (
	SampleRate    = 24000
	BitsPerSample = 16
	Channels      = 1

	headerSize = 44
)

// Encode prepends a RIFF/WAVE header to the raw samples.
func Encode(pcm []byte) []byte {
	byteRate := SampleRate * Channels * BitsPerSample / 8
	blockAlign := Channels * BitsPerSample / 8

	buf := make([]byte, headerSize+len(pcm))

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(headerSize-8+len(pcm)))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // linear PCM
	binary.LittleEndian.PutUint16(buf[22:24], Channels)
	binary.LittleEndian.PutUint32(buf[24:28], SampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], BitsPerSample)

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(pcm)))

	copy(buf[headerSize:], pcm)

	return buf
}

// EncodeBase64 decodes a base64 sample payload and wraps it.
func EncodeBase64(data string) ([]byte, error) {
	pcm, err := base64.StdEncoding.DecodeString(data)

	if err != nil {
		return nil, err
	}

	return Encode(pcm), nil
}

// Duration is the playback length of a raw sample payload.
func Duration(pcm []byte) time.Duration {
	samples := len(pcm) / (Channels * BitsPerSample / 8)

	return time.Duration(samples) * time.Second / SampleRate
}
