package quill

type ModelStreamer[T any] struct {
	Error       error
	ModelConfig ModelConfig
	Value       *T
}

func (stream *ModelStreamer[T]) Collect() (*T, error) {
	return stream.Value, stream.Error
}

func (stream *ModelStreamer[T]) OnError(callback func(error) error) *ModelStreamer[T] {
	if stream.Error != nil {
		stream.Error = callback(stream.Error)
	}
	return stream
}

func (stream *ModelStreamer[T]) Then(callback func(*T) error) *ModelStreamer[T] {
	if stream.Error == nil {
		stream.Error = callback(stream.Value)
	}
	return stream
}
