package aws

import (
	"asgcopy/models"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	astypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

func toScalingGroup(group astypes.AutoScalingGroup) models.ScalingGroup {
	tags := make([]models.Tag, 0, len(group.Tags))
	for _, tag := range group.Tags {
		tags = append(tags, models.Tag{
			Key:               awssdk.ToString(tag.Key),
			Value:             awssdk.ToString(tag.Value),
			PropagateAtLaunch: awssdk.ToBool(tag.PropagateAtLaunch),
		})
	}
	instances := make([]models.Instance, 0, len(group.Instances))
	for _, instance := range group.Instances {
		instances = append(instances, models.Instance{
			InstanceID:     awssdk.ToString(instance.InstanceId),
			LifecycleState: string(instance.LifecycleState),
			HealthStatus:   awssdk.ToString(instance.HealthStatus),
		})
	}
	return models.ScalingGroup{
		Name:                    awssdk.ToString(group.AutoScalingGroupName),
		LaunchConfigurationName: awssdk.ToString(group.LaunchConfigurationName),
		LoadBalancerNames:       group.LoadBalancerNames,
		AvailabilityZones:       group.AvailabilityZones,
		MinSize:                 awssdk.ToInt32(group.MinSize),
		MaxSize:                 awssdk.ToInt32(group.MaxSize),
		DesiredCapacity:         awssdk.ToInt32(group.DesiredCapacity),
		VPCZoneIdentifier:       awssdk.ToString(group.VPCZoneIdentifier),
		Tags:                    tags,
		HealthCheckGracePeriod:  awssdk.ToInt32(group.HealthCheckGracePeriod),
		HealthCheckType:         awssdk.ToString(group.HealthCheckType),
		DefaultCooldown:         awssdk.ToInt32(group.DefaultCooldown),
		TerminationPolicies:     group.TerminationPolicies,
		Instances:               instances,
	}
}

func fromScalingGroup(group models.ScalingGroup) *autoscaling.CreateAutoScalingGroupInput {
	input := &autoscaling.CreateAutoScalingGroupInput{
		AutoScalingGroupName:   awssdk.String(group.Name),
		MinSize:                awssdk.Int32(group.MinSize),
		MaxSize:                awssdk.Int32(group.MaxSize),
		DesiredCapacity:        awssdk.Int32(group.DesiredCapacity),
		AvailabilityZones:      group.AvailabilityZones,
		LoadBalancerNames:      group.LoadBalancerNames,
		HealthCheckGracePeriod: awssdk.Int32(group.HealthCheckGracePeriod),
		DefaultCooldown:        awssdk.Int32(group.DefaultCooldown),
		TerminationPolicies:    group.TerminationPolicies,
	}
	if group.LaunchConfigurationName != "" {
		input.LaunchConfigurationName = awssdk.String(group.LaunchConfigurationName)
	}
	if group.VPCZoneIdentifier != "" {
		input.VPCZoneIdentifier = awssdk.String(group.VPCZoneIdentifier)
	}
	if group.HealthCheckType != "" {
		input.HealthCheckType = awssdk.String(group.HealthCheckType)
	}
	for _, tag := range group.Tags {
		input.Tags = append(input.Tags, astypes.Tag{
			Key:               awssdk.String(tag.Key),
			Value:             awssdk.String(tag.Value),
			PropagateAtLaunch: awssdk.Bool(tag.PropagateAtLaunch),
		})
	}
	return input
}

func toScalingPolicy(policy astypes.ScalingPolicy) models.ScalingPolicy {
	return models.ScalingPolicy{
		PolicyName:        awssdk.ToString(policy.PolicyName),
		PolicyARN:         awssdk.ToString(policy.PolicyARN),
		GroupName:         awssdk.ToString(policy.AutoScalingGroupName),
		AdjustmentType:    awssdk.ToString(policy.AdjustmentType),
		ScalingAdjustment: awssdk.ToInt32(policy.ScalingAdjustment),
		MinAdjustmentStep: awssdk.ToInt32(policy.MinAdjustmentStep),
		Cooldown:          awssdk.ToInt32(policy.Cooldown),
	}
}

func fromScalingPolicy(policy models.ScalingPolicy) *autoscaling.PutScalingPolicyInput {
	input := &autoscaling.PutScalingPolicyInput{
		AutoScalingGroupName: awssdk.String(policy.GroupName),
		PolicyName:           awssdk.String(policy.PolicyName),
		ScalingAdjustment:    awssdk.Int32(policy.ScalingAdjustment),
		Cooldown:             awssdk.Int32(policy.Cooldown),
	}
	if policy.AdjustmentType != "" {
		input.AdjustmentType = awssdk.String(policy.AdjustmentType)
	}
	if policy.MinAdjustmentStep != 0 {
		input.MinAdjustmentStep = awssdk.Int32(policy.MinAdjustmentStep)
	}
	return input
}

func toMetricAlarm(alarm cwtypes.MetricAlarm) models.MetricAlarm {
	dimensions := make(map[string]string, len(alarm.Dimensions))
	for _, dimension := range alarm.Dimensions {
		dimensions[awssdk.ToString(dimension.Name)] = awssdk.ToString(dimension.Value)
	}
	return models.MetricAlarm{
		AlarmName:               awssdk.ToString(alarm.AlarmName),
		AlarmDescription:        awssdk.ToString(alarm.AlarmDescription),
		MetricName:              awssdk.ToString(alarm.MetricName),
		Namespace:               awssdk.ToString(alarm.Namespace),
		Statistic:               string(alarm.Statistic),
		ComparisonOperator:      string(alarm.ComparisonOperator),
		Threshold:               awssdk.ToFloat64(alarm.Threshold),
		Period:                  awssdk.ToInt32(alarm.Period),
		EvaluationPeriods:       awssdk.ToInt32(alarm.EvaluationPeriods),
		Unit:                    string(alarm.Unit),
		AlarmActions:            alarm.AlarmActions,
		OKActions:               alarm.OKActions,
		InsufficientDataActions: alarm.InsufficientDataActions,
		Dimensions:              dimensions,
	}
}

func fromMetricAlarm(alarm models.MetricAlarm) *cloudwatch.PutMetricAlarmInput {
	input := &cloudwatch.PutMetricAlarmInput{
		AlarmName:               awssdk.String(alarm.AlarmName),
		MetricName:              awssdk.String(alarm.MetricName),
		Namespace:               awssdk.String(alarm.Namespace),
		Statistic:               cwtypes.Statistic(alarm.Statistic),
		ComparisonOperator:      cwtypes.ComparisonOperator(alarm.ComparisonOperator),
		Threshold:               awssdk.Float64(alarm.Threshold),
		Period:                  awssdk.Int32(alarm.Period),
		EvaluationPeriods:       awssdk.Int32(alarm.EvaluationPeriods),
		AlarmActions:            alarm.AlarmActions,
		OKActions:               alarm.OKActions,
		InsufficientDataActions: alarm.InsufficientDataActions,
	}
	if alarm.AlarmDescription != "" {
		input.AlarmDescription = awssdk.String(alarm.AlarmDescription)
	}
	if alarm.Unit != "" {
		input.Unit = cwtypes.StandardUnit(alarm.Unit)
	}
	for name, value := range alarm.Dimensions {
		input.Dimensions = append(input.Dimensions, cwtypes.Dimension{
			Name:  awssdk.String(name),
			Value: awssdk.String(value),
		})
	}
	return input
}
