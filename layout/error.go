package layout

import "fmt"

type UnknownPathError struct {
	ID string
}

func newUnknownPathError(id string) UnknownPathError {
	return UnknownPathError{
		ID: id,
	}
}

func (e UnknownPathError) Error() string {
	return fmt.Sprintf("plan targets path %q which is not in the document", e.ID)
}
