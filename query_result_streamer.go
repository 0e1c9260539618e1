package quill

import (
	"database/sql"
)

type QueryResultStreamer[T any] struct {
	Error       error
	ModelConfig ModelConfig
	Result      sql.Result
	Value       *T
}

func (stream *QueryResultStreamer[T]) Collect() (sql.Result, *T, error) {
	return stream.Result, stream.Value, stream.Error
}

func (stream *QueryResultStreamer[T]) OnError(callback func(error) error) *QueryResultStreamer[T] {
	if stream.Error != nil {
		stream.Error = callback(stream.Error)
	}
	return stream
}

func (stream *QueryResultStreamer[T]) Then(callback func(sql.Result, *T) error) *QueryResultStreamer[T] {
	if stream.Error == nil {
		stream.Error = callback(stream.Result, stream.Value)
	}
	return stream
}
