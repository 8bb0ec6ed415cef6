package cloner

import (
	"fmt"
	"time"
)

// SourceNotFoundError reports that the source group lookup did not return
// exactly one match. No mutation has happened when it is returned.
type SourceNotFoundError struct {
	GroupName string
	Count     int
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("unable to find source group %s: got %d matches", e.GroupName, e.Count)
}

// LookupError reports a by-name lookup that had to identify exactly one
// resource but did not.
type LookupError struct {
	Resource string
	Name     string
	Count    int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup of %s %s returned %d matches, expected exactly one", e.Resource, e.Name, e.Count)
}

// CreationError wraps a provider-side rejection of a create call. Resources
// created before the failure are left in place.
type CreationError struct {
	Resource string
	Name     string
	Err      error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create %s %s: %s", e.Resource, e.Name, e.Err.Error())
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// TimeoutError reports that instance or load balancer readiness was not
// reached within the wait timeout.
type TimeoutError struct {
	Stage   string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.Stage)
}
