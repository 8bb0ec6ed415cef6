package cloner

import (
	"context"
	"time"

	"asgcopy/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
)

const pollIntervalMultiplier = 1.5

// waitForInstances polls the new group until the desired number of instances
// report lifecycle state InService and health status Healthy.
func (c *groupCloner) waitForInstances(ctx context.Context, logger lager.Logger, groupName string, desiredCapacity int32, timeout time.Duration) error {
	logger = logger.Session("wait-for-instances", lager.Data{"desiredCapacity": desiredCapacity})
	return c.poll(ctx, logger, "viable instances", timeout, func(ctx context.Context) (bool, error) {
		group, err := c.getGroup(ctx, groupName)
		if err != nil {
			return false, err
		}
		healthy := group.HealthyInstanceCount()
		logger.Debug("polled", lager.Data{"healthyInstances": healthy})
		return healthy >= desiredCapacity, nil
	})
}

// waitForLoadBalancers polls until every instance of the group reports
// InService on every load balancer attached to it.
func (c *groupCloner) waitForLoadBalancers(ctx context.Context, logger lager.Logger, groupName string, timeout time.Duration) error {
	logger = logger.Session("wait-for-load-balancers")
	return c.poll(ctx, logger, "load balancer registration", timeout, func(ctx context.Context) (bool, error) {
		group, err := c.getGroup(ctx, groupName)
		if err != nil {
			return false, err
		}
		for _, loadBalancerName := range group.LoadBalancerNames {
			states, err := c.loadBalancers.GetInstanceStates(ctx, loadBalancerName)
			if err != nil {
				return false, err
			}
			if !allRegistered(group.InstanceIDs(), states) {
				logger.Debug("polled", lager.Data{"loadBalancerName": loadBalancerName, "registered": false})
				return false, nil
			}
		}
		return true, nil
	})
}

func (c *groupCloner) getGroup(ctx context.Context, groupName string) (models.ScalingGroup, error) {
	groups, err := c.scaling.GetGroups(ctx, []string{groupName})
	if err != nil {
		return models.ScalingGroup{}, err
	}
	if len(groups) != 1 {
		return models.ScalingGroup{}, &LookupError{Resource: "auto scaling group", Name: groupName, Count: len(groups)}
	}
	return groups[0], nil
}

// allRegistered is vacuously true for a group that owns no instances, so a
// zero-capacity group does not wait on registration that can never happen.
func allRegistered(instanceIDs []string, states []models.InstanceState) bool {
	inService := make(map[string]bool, len(states))
	for _, state := range states {
		inService[state.InstanceID] = state.State == models.LifecycleStateInService
	}
	for _, id := range instanceIDs {
		if !inService[id] {
			return false
		}
	}
	return true
}

// poll runs ready until it succeeds or the timeout elapses. The interval
// between attempts grows exponentially up to maxPollInterval; describe
// errors are logged and retried until the deadline. The deadline and all
// sleeps go through the injected clock.
func (c *groupCloner) poll(ctx context.Context, logger lager.Logger, stage string, timeout time.Duration, ready func(ctx context.Context) (bool, error)) error {
	interval := backoff.NewExponentialBackOff()
	interval.InitialInterval = c.pollInterval
	interval.MaxInterval = c.maxPollInterval
	interval.Multiplier = pollIntervalMultiplier
	interval.RandomizationFactor = 0
	interval.MaxElapsedTime = 0
	interval.Reset()

	deadline := c.clock.Now().Add(timeout)
	for {
		done, err := ready(ctx)
		if err != nil {
			logger.Error("poll-failed", err)
		} else if done {
			logger.Info("ready")
			return nil
		}

		remaining := deadline.Sub(c.clock.Now())
		if remaining <= 0 {
			err = &TimeoutError{Stage: stage, Timeout: timeout}
			logger.Error("timed-out", err)
			return err
		}
		wait := interval.NextBackOff()
		if wait > remaining {
			wait = remaining
		}

		timer := c.clock.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C():
		}
	}
}
