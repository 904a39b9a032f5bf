package normalize

import "errors"

var (
	// ErrParse возвращается, когда ввод не удается привести к каноничной форме
	ErrParse = errors.New("normalize: unparseable input")
)
