package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Skip2Encoder encodes with github.com/skip2/go-qrcode.
type Skip2Encoder struct{}

// Encode implements Encoder.
func (Skip2Encoder) Encode(payload string, level Level) (*Matrix, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrEncoding)
	}

	rl := qrcode.Medium
	switch level {
	case LevelL:
		rl = qrcode.Low
	case LevelQ:
		rl = qrcode.High
	case LevelH:
		rl = qrcode.Highest
	}

	q, err := qrcode.New(payload, rl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	// The quiet zone is drawn from Options.Margin instead.
	q.DisableBorder = true
	return NewMatrix(q.Bitmap())
}
