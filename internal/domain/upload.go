package domain

import "io"

type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
