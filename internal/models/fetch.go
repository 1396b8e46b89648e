package models

// FetchState records how an external lookup ended. A verified-empty result and
// a failed fetch are different signals: downstream scoring treats "no transfers
// happened" and "we could not ask" with different confidence.
type FetchState string

const (
	FetchOK     FetchState = "ok"
	FetchEmpty  FetchState = "empty"
	FetchFailed FetchState = "failed"
)

// Fetch wraps the result of a best-effort external lookup together with its
// outcome state.
type Fetch[T any] struct {
	State FetchState `json:"state"`
	Data  T          `json:"data,omitempty"`
}

func FetchSuccess[T any](data T) Fetch[T] {
	return Fetch[T]{State: FetchOK, Data: data}
}

func FetchEmptySuccess[T any]() Fetch[T] {
	return Fetch[T]{State: FetchEmpty}
}

func FetchFailure[T any]() Fetch[T] {
	return Fetch[T]{State: FetchFailed}
}

// Failed reports whether the underlying fetch itself failed, as opposed to
// succeeding with no data.
func (f Fetch[T]) Failed() bool {
	return f.State == FetchFailed
}
