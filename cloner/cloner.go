package cloner

import (
	"context"
	"fmt"
	"time"

	"asgcopy/cloud"
	"asgcopy/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type GroupCloner interface {
	CloneGroup(ctx context.Context, req CloneRequest) (models.GroupProperties, error)
}

// CloneRequest carries the parameters of one copy operation.
type CloneRequest struct {
	SourceGroupName         string
	NewGroupName            string
	LaunchConfigurationName string
	// LoadBalancerNames overrides the source group's load balancers when
	// non-empty.
	LoadBalancerNames []string
	WaitForInstances  bool
	WaitTimeout       time.Duration
}

func (r *CloneRequest) validate() error {
	if r.SourceGroupName == "" {
		return fmt.Errorf("source group name is empty")
	}
	if r.NewGroupName == "" {
		return fmt.Errorf("new group name is empty")
	}
	if r.LaunchConfigurationName == "" {
		return fmt.Errorf("launch configuration name is empty")
	}
	if r.WaitForInstances && r.WaitTimeout <= 0 {
		return fmt.Errorf("wait timeout must be positive when waiting for instances")
	}
	return nil
}

type groupCloner struct {
	logger          lager.Logger
	scaling         cloud.ScalingClient
	alarms          cloud.AlarmClient
	loadBalancers   cloud.LoadBalancerClient
	clock           clock.Clock
	pollInterval    time.Duration
	maxPollInterval time.Duration
}

func NewGroupCloner(logger lager.Logger, scaling cloud.ScalingClient, alarms cloud.AlarmClient, loadBalancers cloud.LoadBalancerClient, clock clock.Clock, pollInterval time.Duration, maxPollInterval time.Duration) GroupCloner {
	return &groupCloner{
		logger:          logger.Session("groupCloner"),
		scaling:         scaling,
		alarms:          alarms,
		loadBalancers:   loadBalancers,
		clock:           clock,
		pollInterval:    pollInterval,
		maxPollInterval: maxPollInterval,
	}
}

// CloneGroup copies the source group into a new group with the given name
// and launch configuration, then recreates the source's scaling policies and
// alarms against the new group. There is no rollback: resources created
// before a failure are left in place.
func (c *groupCloner) CloneGroup(ctx context.Context, req CloneRequest) (models.GroupProperties, error) {
	logger := c.logger.WithData(lager.Data{"sourceGroupName": req.SourceGroupName, "newGroupName": req.NewGroupName})

	if err := req.validate(); err != nil {
		return nil, err
	}

	sourceGroups, err := c.scaling.GetGroups(ctx, []string{req.SourceGroupName})
	if err != nil {
		logger.Error("failed-to-get-source-group", err)
		return nil, err
	}
	if len(sourceGroups) != 1 {
		err = &SourceNotFoundError{GroupName: req.SourceGroupName, Count: len(sourceGroups)}
		logger.Error("source-group-not-found", err)
		return nil, err
	}
	sourceGroup := sourceGroups[0]

	sourcePolicies, err := c.scaling.GetPolicies(ctx, req.SourceGroupName)
	if err != nil {
		logger.Error("failed-to-get-source-policies", err)
		return nil, err
	}

	launchConfigurations, err := c.scaling.GetLaunchConfigurations(ctx, []string{req.LaunchConfigurationName})
	if err != nil {
		logger.Error("failed-to-get-launch-configuration", err)
		return nil, err
	}
	if len(launchConfigurations) != 1 {
		err = &LookupError{Resource: "launch configuration", Name: req.LaunchConfigurationName, Count: len(launchConfigurations)}
		logger.Error("launch-configuration-not-found", err)
		return nil, err
	}

	newGroup := buildNewGroup(sourceGroup, req, launchConfigurations[0])

	if err = c.scaling.CreateGroup(ctx, newGroup); err != nil {
		logger.Error("failed-to-create-group", err)
		return nil, &CreationError{Resource: "auto scaling group", Name: req.NewGroupName, Err: err}
	}
	logger.Info("group-created", lager.Data{"desiredCapacity": newGroup.DesiredCapacity})

	if req.WaitForInstances {
		if err = c.waitForInstances(ctx, logger, req.NewGroupName, newGroup.DesiredCapacity, req.WaitTimeout); err != nil {
			return nil, err
		}
		if err = c.waitForLoadBalancers(ctx, logger, req.NewGroupName, req.WaitTimeout); err != nil {
			return nil, err
		}
	}

	createdGroups, err := c.scaling.GetGroups(ctx, []string{req.NewGroupName})
	if err != nil {
		logger.Error("failed-to-refetch-new-group", err)
		return nil, err
	}
	if len(createdGroups) != 1 {
		err = &LookupError{Resource: "auto scaling group", Name: req.NewGroupName, Count: len(createdGroups)}
		logger.Error("new-group-not-found", err)
		return nil, err
	}
	createdGroup := createdGroups[0]

	for _, sourcePolicy := range sourcePolicies {
		if err = c.copyPolicy(ctx, logger, sourcePolicy, req.SourceGroupName, createdGroup.Name); err != nil {
			return nil, err
		}
	}

	return createdGroup.Properties(), nil
}

// copyPolicy recreates one source policy against the new group, then copies
// the alarm tied to it by the {source}-ScaleUp/-ScaleDown naming
// convention, re-pointed at the new group and the new policy.
func (c *groupCloner) copyPolicy(ctx context.Context, logger lager.Logger, sourcePolicy models.ScalingPolicy, sourceGroupName string, newGroupName string) error {
	newPolicy := sourcePolicy
	newPolicy.GroupName = newGroupName
	newPolicy.PolicyARN = ""

	newPolicyARN, err := c.scaling.CreatePolicy(ctx, newPolicy)
	if err != nil {
		logger.Error("failed-to-create-policy", err, lager.Data{"policyName": newPolicy.PolicyName})
		return &CreationError{Resource: "scaling policy", Name: newPolicy.PolicyName, Err: err}
	}

	suffix := sourcePolicy.AlarmSuffix()
	sourceAlarmName := fmt.Sprintf("%s-%s", sourceGroupName, suffix)
	alarms, err := c.alarms.GetAlarms(ctx, []string{sourceAlarmName})
	if err != nil {
		logger.Error("failed-to-get-alarm", err, lager.Data{"alarmName": sourceAlarmName})
		return err
	}
	if len(alarms) != 1 {
		err = &LookupError{Resource: "alarm", Name: sourceAlarmName, Count: len(alarms)}
		logger.Error("alarm-not-found", err)
		return err
	}

	newAlarm := copyAlarm(alarms[0], newGroupName, suffix, sourcePolicy.PolicyARN, newPolicyARN)
	if err = c.alarms.CreateAlarm(ctx, newAlarm); err != nil {
		logger.Error("failed-to-create-alarm", err, lager.Data{"alarmName": newAlarm.AlarmName})
		return &CreationError{Resource: "alarm", Name: newAlarm.AlarmName, Err: err}
	}
	logger.Info("policy-copied", lager.Data{"policyName": newPolicy.PolicyName, "alarmName": newAlarm.AlarmName})
	return nil
}

func buildNewGroup(source models.ScalingGroup, req CloneRequest, launchConfiguration models.LaunchConfiguration) models.ScalingGroup {
	loadBalancerNames := source.LoadBalancerNames
	if len(req.LoadBalancerNames) > 0 {
		loadBalancerNames = req.LoadBalancerNames
	}
	return models.ScalingGroup{
		Name:                    req.NewGroupName,
		LaunchConfigurationName: launchConfiguration.Name,
		LoadBalancerNames:       loadBalancerNames,
		AvailabilityZones:       source.AvailabilityZones,
		MinSize:                 source.MinSize,
		MaxSize:                 source.MaxSize,
		DesiredCapacity:         source.DesiredCapacity,
		VPCZoneIdentifier:       source.VPCZoneIdentifier,
		Tags:                    source.Tags,
		HealthCheckGracePeriod:  source.HealthCheckGracePeriod,
		HealthCheckType:         source.HealthCheckType,
		DefaultCooldown:         source.DefaultCooldown,
		TerminationPolicies:     source.TerminationPolicies,
	}
}

// copyAlarm renames the alarm for the new group so the source's alarm is not
// overwritten, rewrites the group dimension, and swaps the source policy ARN
// for the new one in the alarm actions.
func copyAlarm(source models.MetricAlarm, newGroupName string, suffix string, sourcePolicyARN string, newPolicyARN string) models.MetricAlarm {
	newAlarm := source
	newAlarm.AlarmName = fmt.Sprintf("%s-%s", newGroupName, suffix)

	newAlarm.Dimensions = make(map[string]string, len(source.Dimensions))
	for name, value := range source.Dimensions {
		newAlarm.Dimensions[name] = value
	}
	newAlarm.Dimensions[models.GroupNameDimension] = newGroupName

	newAlarm.AlarmActions = swapActions(source.AlarmActions, sourcePolicyARN, newPolicyARN)
	newAlarm.OKActions = swapActions(source.OKActions, sourcePolicyARN, newPolicyARN)
	newAlarm.InsufficientDataActions = swapActions(source.InsufficientDataActions, sourcePolicyARN, newPolicyARN)
	return newAlarm
}

func swapActions(actions []string, sourcePolicyARN string, newPolicyARN string) []string {
	if actions == nil {
		return nil
	}
	swapped := make([]string, 0, len(actions))
	for _, action := range actions {
		if sourcePolicyARN != "" && action == sourcePolicyARN && newPolicyARN != "" {
			action = newPolicyARN
		}
		swapped = append(swapped, action)
	}
	return swapped
}
