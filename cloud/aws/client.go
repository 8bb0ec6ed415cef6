package aws

import (
	"context"

	"asgcopy/cloud"
	"asgcopy/models"

	"code.cloudfoundry.org/lager/v3"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
)

// Client implements the cloud capability interfaces against the AWS auto
// scaling, cloudwatch and classic load balancing services.
type Client struct {
	logger      lager.Logger
	autoscaling *autoscaling.Client
	cloudwatch  *cloudwatch.Client
	elb         *elasticloadbalancing.Client
}

var _ cloud.ScalingClient = &Client{}
var _ cloud.AlarmClient = &Client{}
var _ cloud.LoadBalancerClient = &Client{}

// New resolves AWS configuration and credentials for the region and returns
// a connected client. Credential resolution failures surface as
// *cloud.AuthenticationError before any call is made.
func New(ctx context.Context, conf *cloud.Config, logger lager.Logger) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.Region),
	}
	if conf.MaxRetries > 0 {
		opts = append(opts, awsconfig.WithRetryMaxAttempts(conf.MaxRetries))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &cloud.AuthenticationError{Region: conf.Region, Err: err}
	}
	if _, err = cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, &cloud.AuthenticationError{Region: conf.Region, Err: err}
	}

	endpoint := conf.Endpoint
	return &Client{
		logger: logger,
		autoscaling: autoscaling.NewFromConfig(cfg, func(o *autoscaling.Options) {
			if endpoint != "" {
				o.BaseEndpoint = awssdk.String(endpoint)
			}
		}),
		cloudwatch: cloudwatch.NewFromConfig(cfg, func(o *cloudwatch.Options) {
			if endpoint != "" {
				o.BaseEndpoint = awssdk.String(endpoint)
			}
		}),
		elb: elasticloadbalancing.NewFromConfig(cfg, func(o *elasticloadbalancing.Options) {
			if endpoint != "" {
				o.BaseEndpoint = awssdk.String(endpoint)
			}
		}),
	}, nil
}

func (c *Client) GetGroups(ctx context.Context, names []string) ([]models.ScalingGroup, error) {
	c.logger.Debug("describe-auto-scaling-groups", lager.Data{"names": names})
	output, err := c.autoscaling.DescribeAutoScalingGroups(ctx, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: names,
	})
	if err != nil {
		return nil, err
	}
	groups := make([]models.ScalingGroup, 0, len(output.AutoScalingGroups))
	for _, group := range output.AutoScalingGroups {
		groups = append(groups, toScalingGroup(group))
	}
	return groups, nil
}

func (c *Client) GetPolicies(ctx context.Context, groupName string) ([]models.ScalingPolicy, error) {
	c.logger.Debug("describe-policies", lager.Data{"groupName": groupName})
	output, err := c.autoscaling.DescribePolicies(ctx, &autoscaling.DescribePoliciesInput{
		AutoScalingGroupName: awssdk.String(groupName),
	})
	if err != nil {
		return nil, err
	}
	policies := make([]models.ScalingPolicy, 0, len(output.ScalingPolicies))
	for _, policy := range output.ScalingPolicies {
		policies = append(policies, toScalingPolicy(policy))
	}
	return policies, nil
}

func (c *Client) GetLaunchConfigurations(ctx context.Context, names []string) ([]models.LaunchConfiguration, error) {
	c.logger.Debug("describe-launch-configurations", lager.Data{"names": names})
	output, err := c.autoscaling.DescribeLaunchConfigurations(ctx, &autoscaling.DescribeLaunchConfigurationsInput{
		LaunchConfigurationNames: names,
	})
	if err != nil {
		return nil, err
	}
	configurations := make([]models.LaunchConfiguration, 0, len(output.LaunchConfigurations))
	for _, configuration := range output.LaunchConfigurations {
		configurations = append(configurations, models.LaunchConfiguration{
			Name: awssdk.ToString(configuration.LaunchConfigurationName),
		})
	}
	return configurations, nil
}

func (c *Client) CreateGroup(ctx context.Context, group models.ScalingGroup) error {
	c.logger.Info("create-auto-scaling-group", lager.Data{"name": group.Name})
	_, err := c.autoscaling.CreateAutoScalingGroup(ctx, fromScalingGroup(group))
	return err
}

func (c *Client) CreatePolicy(ctx context.Context, policy models.ScalingPolicy) (string, error) {
	c.logger.Info("put-scaling-policy", lager.Data{"name": policy.PolicyName, "groupName": policy.GroupName})
	output, err := c.autoscaling.PutScalingPolicy(ctx, fromScalingPolicy(policy))
	if err != nil {
		return "", err
	}
	return awssdk.ToString(output.PolicyARN), nil
}

func (c *Client) GetAlarms(ctx context.Context, names []string) ([]models.MetricAlarm, error) {
	c.logger.Debug("describe-alarms", lager.Data{"names": names})
	output, err := c.cloudwatch.DescribeAlarms(ctx, &cloudwatch.DescribeAlarmsInput{
		AlarmNames: names,
	})
	if err != nil {
		return nil, err
	}
	alarms := make([]models.MetricAlarm, 0, len(output.MetricAlarms))
	for _, alarm := range output.MetricAlarms {
		alarms = append(alarms, toMetricAlarm(alarm))
	}
	return alarms, nil
}

func (c *Client) CreateAlarm(ctx context.Context, alarm models.MetricAlarm) error {
	c.logger.Info("put-metric-alarm", lager.Data{"name": alarm.AlarmName})
	_, err := c.cloudwatch.PutMetricAlarm(ctx, fromMetricAlarm(alarm))
	return err
}

func (c *Client) GetInstanceStates(ctx context.Context, loadBalancerName string) ([]models.InstanceState, error) {
	c.logger.Debug("describe-instance-health", lager.Data{"loadBalancerName": loadBalancerName})
	output, err := c.elb.DescribeInstanceHealth(ctx, &elasticloadbalancing.DescribeInstanceHealthInput{
		LoadBalancerName: awssdk.String(loadBalancerName),
	})
	if err != nil {
		return nil, err
	}
	states := make([]models.InstanceState, 0, len(output.InstanceStates))
	for _, state := range output.InstanceStates {
		states = append(states, models.InstanceState{
			InstanceID: awssdk.ToString(state.InstanceId),
			State:      awssdk.ToString(state.State),
		})
	}
	return states, nil
}
