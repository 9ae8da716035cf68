package domain

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "with field",
			err:  ValidationError{Field: "title", Message: "must be a non-empty string"},
			want: "invalid title: must be a non-empty string",
		},
		{
			name: "message only",
			err:  ValidationError{Message: "bad input"},
			want: "bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	err := &ValidationError{Field: "id", Message: "unknown task: 9", Err: ErrNotFound}

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false, want true")
	}
}

func TestStorageError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  StorageError
		want string
	}{
		{
			name: "with path",
			err:  StorageError{Op: "load", Path: "tasks.json", Err: errors.New("corrupt")},
			want: "storage load [tasks.json]: corrupt",
		},
		{
			name: "without path",
			err:  StorageError{Op: "save", Err: errors.New("disk full")},
			want: "storage save: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("StorageError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &StorageError{Op: "load", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}
}
