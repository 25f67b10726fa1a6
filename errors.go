package foodnet

import "fmt"

// Error is a wrapper for specific types of errors for which there is no
// additional information necessary. These errors are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrNotFinalized      = Error{"Network has not been finalized"}
	ErrRegisterWrongType = Error{"Type is not recognized"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
)

// NilArgError documents errors resulting from certain arguments provided to a
// function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError documents a slice whose length does not match what the
// Network expects.
type SizeMismatchError struct {
	Expected, Got int
	What          string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("wrong number of %s: expected %d, got %d", err.What, err.Expected, err.Got)
}
