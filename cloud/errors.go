package cloud

import "fmt"

// AuthenticationError reports a credential or connection setup failure. No
// mutation has happened when it is returned.
type AuthenticationError struct {
	Region string
	Err    error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("failed to connect to cloud provider for region %s: %s", e.Region, e.Err.Error())
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
