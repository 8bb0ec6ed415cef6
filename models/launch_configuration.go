package models

// LaunchConfiguration is referenced by name from a group; its provisioning
// attributes stay with the provider and are never copied.
type LaunchConfiguration struct {
	Name string `json:"name"`
}

// InstanceState is the registration state of one instance on a load
// balancer.
type InstanceState struct {
	InstanceID string `json:"instance_id"`
	State      string `json:"state"`
}
