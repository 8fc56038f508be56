package processor

import (
	"context"
	"io"
)

// PDFExtractor PDF文本提取器接口
type PDFExtractor interface {
	// ExtractTextFromReader 从Reader中提取纯文本
	ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error)
	// ExtractTextFromBytes 从字节数组中提取纯文本
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, error)
}
