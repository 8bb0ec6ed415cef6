package models

const (
	LifecycleStateInService = "InService"
	HealthStatusHealthy     = "Healthy"
)

type Tag struct {
	Key               string `json:"key"`
	Value             string `json:"value"`
	PropagateAtLaunch bool   `json:"propagate_at_launch"`
}

type Instance struct {
	InstanceID     string `json:"instance_id"`
	LifecycleState string `json:"lifecycle_state"`
	HealthStatus   string `json:"health_status"`
}

func (i Instance) IsHealthy() bool {
	return i.LifecycleState == LifecycleStateInService && i.HealthStatus == HealthStatusHealthy
}

// ScalingGroup is the full configuration of an auto scaling group. It is
// built once, submitted to the provider and never mutated locally.
type ScalingGroup struct {
	Name                    string     `json:"name"`
	LaunchConfigurationName string     `json:"launch_configuration_name"`
	LoadBalancerNames       []string   `json:"load_balancer_names"`
	AvailabilityZones       []string   `json:"availability_zones"`
	MinSize                 int32      `json:"min_size"`
	MaxSize                 int32      `json:"max_size"`
	DesiredCapacity         int32      `json:"desired_capacity"`
	VPCZoneIdentifier       string     `json:"vpc_zone_identifier"`
	Tags                    []Tag      `json:"tags"`
	HealthCheckGracePeriod  int32      `json:"health_check_grace_period"`
	HealthCheckType         string     `json:"health_check_type"`
	DefaultCooldown         int32      `json:"default_cooldown"`
	TerminationPolicies     []string   `json:"termination_policies"`
	Instances               []Instance `json:"instances,omitempty"`
}

func (g *ScalingGroup) HealthyInstanceCount() int32 {
	var healthy int32
	for _, instance := range g.Instances {
		if instance.IsHealthy() {
			healthy++
		}
	}
	return healthy
}

func (g *ScalingGroup) InstanceIDs() []string {
	ids := make([]string, 0, len(g.Instances))
	for _, instance := range g.Instances {
		ids = append(ids, instance.InstanceID)
	}
	return ids
}

type GroupProperties map[string]interface{}

// Properties flattens the group into the attribute mapping emitted on
// success.
func (g *ScalingGroup) Properties() GroupProperties {
	return GroupProperties{
		"name":                      g.Name,
		"launch_configuration_name": g.LaunchConfigurationName,
		"load_balancer_names":       g.LoadBalancerNames,
		"availability_zones":        g.AvailabilityZones,
		"min_size":                  g.MinSize,
		"max_size":                  g.MaxSize,
		"desired_capacity":          g.DesiredCapacity,
		"vpc_zone_identifier":       g.VPCZoneIdentifier,
		"health_check_grace_period": g.HealthCheckGracePeriod,
		"health_check_type":         g.HealthCheckType,
		"default_cooldown":          g.DefaultCooldown,
		"termination_policies":      g.TerminationPolicies,
		"instances":                 g.InstanceIDs(),
	}
}
