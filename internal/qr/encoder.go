package qr

import (
	"fmt"
	"strings"

	"github.com/yeqown/go-qrcode/v2"
)

// Encoder turns a payload into a module matrix.
type Encoder interface {
	Encode(payload string, level Level) (*Matrix, error)
}

// EncoderByName returns the encoder registered under name: "skip2" or
// "yeqown". Unknown names get the yeqown encoder.
func EncoderByName(name string) Encoder {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "skip2":
		return Skip2Encoder{}
	default:
		return YeqownEncoder{}
	}
}

// YeqownEncoder encodes with github.com/yeqown/go-qrcode/v2.
type YeqownEncoder struct{}

// Encode implements Encoder.
func (YeqownEncoder) Encode(payload string, level Level) (*Matrix, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrEncoding)
	}

	ec := qrcode.ErrorCorrectionMedium
	switch level {
	case LevelL:
		ec = qrcode.ErrorCorrectionLow
	case LevelQ:
		ec = qrcode.ErrorCorrectionQuart
	case LevelH:
		ec = qrcode.ErrorCorrectionHighest
	}

	qrc, err := qrcode.NewWith(payload, qrcode.WithErrorCorrectionLevel(ec))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	w := &matrixWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if w.err != nil {
		return nil, w.err
	}
	return w.matrix, nil
}

// matrixWriter implements qrcode.Writer and keeps the bare module grid
// instead of drawing it.
type matrixWriter struct {
	matrix *Matrix
	err    error
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	n := mat.Width()
	rows := make([][]bool, n)
	for i := range rows {
		rows[i] = make([]bool, n)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if x < n && y < n {
			rows[y][x] = v.IsSet()
		}
	})
	w.matrix, w.err = NewMatrix(rows)
	return nil
}

func (w *matrixWriter) Close() error { return nil }
