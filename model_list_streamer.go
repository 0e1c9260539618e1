package quill

type ModelListStreamer[T any] struct {
	Error       error
	ModelConfig ModelConfig
	Values      []*T
}

func (stream *ModelListStreamer[T]) Collect() ([]*T, error) {
	return stream.Values, stream.Error
}

func (stream *ModelListStreamer[T]) First() *ModelStreamer[T] {
	result := &ModelStreamer[T]{
		Error:       stream.Error,
		ModelConfig: stream.ModelConfig,
	}
	if result.Error == nil {
		if len(stream.Values) > 0 {
			result.Value = stream.Values[0]
		} else {
			result.Error = ErrorNotFound{}
		}
	}
	return result
}

func (stream *ModelListStreamer[T]) ForEach(callback func(i int, value *T) error) *ModelListStreamer[T] {
	i := 0
	for stream.Error == nil && i < len(stream.Values) {
		stream.Error = callback(i, stream.Values[i])
		i++
	}
	return stream
}

func (stream *ModelListStreamer[T]) Map(callback func(i int, value *T) (*T, error)) *ModelListStreamer[T] {
	i := 0
	for stream.Error == nil && i < len(stream.Values) {
		stream.Values[i], stream.Error = callback(i, stream.Values[i])
		i++
	}
	return stream
}

func (stream *ModelListStreamer[T]) OnError(callback func(error) error) *ModelListStreamer[T] {
	if stream.Error != nil {
		stream.Error = callback(stream.Error)
	}
	return stream
}

func (stream *ModelListStreamer[T]) Reduce(callback func(i int, value *T, acc *T) (*T, error)) *ModelStreamer[T] {
	result := &ModelStreamer[T]{
		Error:       stream.Error,
		ModelConfig: stream.ModelConfig,
	}
	i := 0
	for result.Error == nil && i < len(stream.Values) {
		result.Value, result.Error = callback(i, stream.Values[i], result.Value)
		i++
	}
	return result
}

func (stream *ModelListStreamer[T]) Then(callback func([]*T) error) *ModelListStreamer[T] {
	if stream.Error == nil {
		stream.Error = callback(stream.Values)
	}
	return stream
}
