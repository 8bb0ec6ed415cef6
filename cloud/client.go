package cloud

import (
	"context"

	"asgcopy/models"
)

// ScalingClient is the capability surface this tool needs from a provider's
// auto scaling service.
type ScalingClient interface {
	GetGroups(ctx context.Context, names []string) ([]models.ScalingGroup, error)
	GetPolicies(ctx context.Context, groupName string) ([]models.ScalingPolicy, error)
	GetLaunchConfigurations(ctx context.Context, names []string) ([]models.LaunchConfiguration, error)
	CreateGroup(ctx context.Context, group models.ScalingGroup) error
	// CreatePolicy returns the provider identifier (ARN) of the created
	// policy so alarm actions can be re-pointed at it.
	CreatePolicy(ctx context.Context, policy models.ScalingPolicy) (string, error)
}

// AlarmClient is the capability surface needed from the provider's metric
// alarm service.
type AlarmClient interface {
	GetAlarms(ctx context.Context, names []string) ([]models.MetricAlarm, error)
	CreateAlarm(ctx context.Context, alarm models.MetricAlarm) error
}

// LoadBalancerClient reports per-instance registration state on a load
// balancer.
type LoadBalancerClient interface {
	GetInstanceStates(ctx context.Context, loadBalancerName string) ([]models.InstanceState, error)
}
