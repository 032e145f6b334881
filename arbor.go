package arbor

/*
BSD 3-Clause License

Copyright (c) 2022, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Number is the constraint for node values. Values have to be ordered and
// summable.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ArborError is an error type for the arbor module and its sub-packages.
type ArborError string

func (e ArborError) Error() string {
	return string(e)
}

// ErrNodeNotFound is flagged whenever a node argument is not part of the
// tree a query is performed on.
const ErrNodeNotFound = ArborError("node not found in tree")

// ErrMalformedInput is flagged whenever a serialized tree cannot be decoded.
const ErrMalformedInput = ArborError("malformed tree encoding")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ArborError("illegal arguments")
