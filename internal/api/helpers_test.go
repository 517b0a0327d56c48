package api_test

import "fmt"

func errWrap(sentinel error, msg string) error {
	return fmt.Errorf("%w: %s", sentinel, msg)
}
