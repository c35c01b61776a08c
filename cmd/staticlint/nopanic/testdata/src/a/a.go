package a

import "errors"

func fails() error {
	return errors.New("boom")
}

func blowsUp() {
	panic("boom") // want "avoid panic in library code, return an error instead"
}

func propagates() error {
	if err := fails(); err != nil {
		return err
	}

	return nil
}
