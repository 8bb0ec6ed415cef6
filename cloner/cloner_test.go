package cloner_test

import (
	"context"
	"errors"
	"time"

	"asgcopy/fakes"
	"asgcopy/models"

	. "asgcopy/cloner"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GroupCloner", func() {
	var (
		groupCloner   GroupCloner
		scaling       *fakes.FakeScalingClient
		alarms        *fakes.FakeAlarmClient
		loadBalancers *fakes.FakeLoadBalancerClient
		fakeClock     *fakeclock.FakeClock

		req        CloneRequest
		properties models.GroupProperties
		err        error

		sourceGroup    models.ScalingGroup
		refetchedGroup models.ScalingGroup
		scaleUpAlarm   models.MetricAlarm
		scaleDownAlarm models.MetricAlarm
	)

	BeforeEach(func() {
		scaling = &fakes.FakeScalingClient{}
		alarms = &fakes.FakeAlarmClient{}
		loadBalancers = &fakes.FakeLoadBalancerClient{}
		logger := lagertest.NewTestLogger("cloner-test")
		fakeClock = fakeclock.NewFakeClock(time.Now())
		groupCloner = NewGroupCloner(logger, scaling, alarms, loadBalancers, fakeClock, 5*time.Second, 30*time.Second)

		sourceGroup = models.ScalingGroup{
			Name:                    "asg-prod",
			LaunchConfigurationName: "lc-prod",
			LoadBalancerNames:       []string{"lb-1", "lb-2"},
			AvailabilityZones:       []string{"us-east-1a", "us-east-1b"},
			MinSize:                 2,
			MaxSize:                 10,
			DesiredCapacity:         4,
			VPCZoneIdentifier:       "subnet-1,subnet-2",
			Tags:                    []models.Tag{{Key: "env", Value: "prod", PropagateAtLaunch: true}},
			HealthCheckGracePeriod:  120,
			HealthCheckType:         "ELB",
			DefaultCooldown:         300,
			TerminationPolicies:     []string{"OldestInstance"},
		}
		refetchedGroup = models.ScalingGroup{
			Name:                    "asg-prod-copy",
			LaunchConfigurationName: "lc-new",
			LoadBalancerNames:       []string{"lb-1", "lb-2"},
			AvailabilityZones:       sourceGroup.AvailabilityZones,
			MinSize:                 2,
			MaxSize:                 10,
			DesiredCapacity:         4,
			VPCZoneIdentifier:       sourceGroup.VPCZoneIdentifier,
			HealthCheckGracePeriod:  120,
			HealthCheckType:         "ELB",
			DefaultCooldown:         300,
			TerminationPolicies:     []string{"OldestInstance"},
		}
		scaleUpAlarm = models.MetricAlarm{
			AlarmName:               "asg-prod-ScaleUp",
			AlarmDescription:        "scale up on high cpu",
			MetricName:              "CPUUtilization",
			Namespace:               "AWS/EC2",
			Statistic:               "Average",
			ComparisonOperator:      "GreaterThanThreshold",
			Threshold:               80,
			Period:                  60,
			EvaluationPeriods:       2,
			Unit:                    "Percent",
			AlarmActions:            []string{"arn:policy/asg-prod/scale-up"},
			OKActions:               []string{"arn:sns/ops", "arn:policy/asg-prod/scale-up"},
			InsufficientDataActions: []string{"arn:policy/asg-prod/scale-up"},
			Dimensions:              map[string]string{models.GroupNameDimension: "asg-prod"},
		}
		scaleDownAlarm = models.MetricAlarm{
			AlarmName:          "asg-prod-ScaleDown",
			MetricName:         "CPUUtilization",
			Namespace:          "AWS/EC2",
			Statistic:          "Average",
			ComparisonOperator: "LessThanThreshold",
			Threshold:          20,
			Period:             60,
			EvaluationPeriods:  2,
			AlarmActions:       []string{"arn:policy/asg-prod/scale-down"},
			Dimensions:         map[string]string{models.GroupNameDimension: "asg-prod"},
		}

		scaling.GetGroupsReturnsOnCall(0, []models.ScalingGroup{sourceGroup}, nil)
		scaling.GetGroupsReturnsOnCall(1, []models.ScalingGroup{refetchedGroup}, nil)
		scaling.GetPoliciesReturns([]models.ScalingPolicy{
			{
				PolicyName:        "scale-up",
				PolicyARN:         "arn:policy/asg-prod/scale-up",
				GroupName:         "asg-prod",
				AdjustmentType:    "PercentChangeInCapacity",
				ScalingAdjustment: 10,
				MinAdjustmentStep: 2,
				Cooldown:          300,
			},
			{
				PolicyName:        "scale-down",
				PolicyARN:         "arn:policy/asg-prod/scale-down",
				GroupName:         "asg-prod",
				AdjustmentType:    "PercentChangeInCapacity",
				ScalingAdjustment: -10,
				Cooldown:          300,
			},
		}, nil)
		scaling.GetLaunchConfigurationsReturns([]models.LaunchConfiguration{{Name: "lc-new"}}, nil)
		scaling.CreatePolicyReturnsOnCall(0, "arn:policy/asg-prod-copy/scale-up", nil)
		scaling.CreatePolicyReturnsOnCall(1, "arn:policy/asg-prod-copy/scale-down", nil)
		alarms.GetAlarmsStub = func(ctx context.Context, names []string) ([]models.MetricAlarm, error) {
			switch names[0] {
			case "asg-prod-ScaleUp":
				return []models.MetricAlarm{scaleUpAlarm}, nil
			case "asg-prod-ScaleDown":
				return []models.MetricAlarm{scaleDownAlarm}, nil
			}
			return nil, nil
		}

		req = CloneRequest{
			SourceGroupName:         "asg-prod",
			NewGroupName:            "asg-prod-copy",
			LaunchConfigurationName: "lc-new",
		}
	})

	JustBeforeEach(func() {
		properties, err = groupCloner.CloneGroup(context.Background(), req)
	})

	Context("when the copy succeeds", func() {
		It("creates a group with the source's attributes and the new name and launch configuration", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(scaling.CreateGroupCallCount()).To(Equal(1))
			_, created := scaling.CreateGroupArgsForCall(0)
			Expect(created.Name).To(Equal("asg-prod-copy"))
			Expect(created.LaunchConfigurationName).To(Equal("lc-new"))
			Expect(created.AvailabilityZones).To(Equal(sourceGroup.AvailabilityZones))
			Expect(created.MinSize).To(Equal(sourceGroup.MinSize))
			Expect(created.MaxSize).To(Equal(sourceGroup.MaxSize))
			Expect(created.DesiredCapacity).To(Equal(sourceGroup.DesiredCapacity))
			Expect(created.VPCZoneIdentifier).To(Equal(sourceGroup.VPCZoneIdentifier))
			Expect(created.Tags).To(Equal(sourceGroup.Tags))
			Expect(created.HealthCheckGracePeriod).To(Equal(sourceGroup.HealthCheckGracePeriod))
			Expect(created.HealthCheckType).To(Equal(sourceGroup.HealthCheckType))
			Expect(created.DefaultCooldown).To(Equal(sourceGroup.DefaultCooldown))
			Expect(created.TerminationPolicies).To(Equal(sourceGroup.TerminationPolicies))
		})

		It("inherits the source group's load balancers", func() {
			_, created := scaling.CreateGroupArgsForCall(0)
			Expect(created.LoadBalancerNames).To(Equal([]string{"lb-1", "lb-2"}))
		})

		It("recreates every policy against the new group", func() {
			Expect(scaling.CreatePolicyCallCount()).To(Equal(2))
			_, first := scaling.CreatePolicyArgsForCall(0)
			Expect(first.PolicyName).To(Equal("scale-up"))
			Expect(first.GroupName).To(Equal("asg-prod-copy"))
			Expect(first.PolicyARN).To(BeEmpty())
			Expect(first.MinAdjustmentStep).To(Equal(int32(2)))
			_, second := scaling.CreatePolicyArgsForCall(1)
			Expect(second.PolicyName).To(Equal("scale-down"))
			Expect(second.GroupName).To(Equal("asg-prod-copy"))
		})

		It("looks up alarms by the source naming convention", func() {
			Expect(alarms.GetAlarmsCallCount()).To(Equal(2))
			_, names := alarms.GetAlarmsArgsForCall(0)
			Expect(names).To(Equal([]string{"asg-prod-ScaleUp"}))
			_, names = alarms.GetAlarmsArgsForCall(1)
			Expect(names).To(Equal([]string{"asg-prod-ScaleDown"}))
		})

		It("creates alarms dimensioned and named for the new group", func() {
			Expect(alarms.CreateAlarmCallCount()).To(Equal(2))
			_, up := alarms.CreateAlarmArgsForCall(0)
			Expect(up.AlarmName).To(Equal("asg-prod-copy-ScaleUp"))
			Expect(up.Dimensions[models.GroupNameDimension]).To(Equal("asg-prod-copy"))
			Expect(up.AlarmActions).To(Equal([]string{"arn:policy/asg-prod-copy/scale-up"}))
			_, down := alarms.CreateAlarmArgsForCall(1)
			Expect(down.AlarmName).To(Equal("asg-prod-copy-ScaleDown"))
			Expect(down.Dimensions[models.GroupNameDimension]).To(Equal("asg-prod-copy"))
			Expect(down.AlarmActions).To(Equal([]string{"arn:policy/asg-prod-copy/scale-down"}))
		})

		It("carries the alarm's description, unit and secondary actions over", func() {
			_, up := alarms.CreateAlarmArgsForCall(0)
			Expect(up.AlarmDescription).To(Equal("scale up on high cpu"))
			Expect(up.Unit).To(Equal("Percent"))
			Expect(up.OKActions).To(Equal([]string{"arn:sns/ops", "arn:policy/asg-prod-copy/scale-up"}))
			Expect(up.InsufficientDataActions).To(Equal([]string{"arn:policy/asg-prod-copy/scale-up"}))
		})

		It("does not touch the source alarm's dimensions", func() {
			Expect(scaleUpAlarm.Dimensions[models.GroupNameDimension]).To(Equal("asg-prod"))
			Expect(scaleDownAlarm.Dimensions[models.GroupNameDimension]).To(Equal("asg-prod"))
		})

		It("returns the re-fetched group's properties", func() {
			Expect(properties).To(Equal(refetchedGroup.Properties()))
		})
	})

	Context("when load balancers are overridden", func() {
		BeforeEach(func() {
			req.LoadBalancerNames = []string{"lb-override"}
		})

		It("creates the group with the override instead of the source's", func() {
			Expect(err).NotTo(HaveOccurred())
			_, created := scaling.CreateGroupArgsForCall(0)
			Expect(created.LoadBalancerNames).To(Equal([]string{"lb-override"}))
		})
	})

	Context("when the source group does not exist", func() {
		BeforeEach(func() {
			scaling.GetGroupsReturnsOnCall(0, []models.ScalingGroup{}, nil)
		})

		It("fails with SourceNotFoundError without creating anything", func() {
			Expect(err).To(BeAssignableToTypeOf(&SourceNotFoundError{}))
			Expect(err.Error()).To(ContainSubstring("asg-prod"))
			Expect(scaling.CreateGroupCallCount()).To(BeZero())
			Expect(scaling.CreatePolicyCallCount()).To(BeZero())
			Expect(alarms.CreateAlarmCallCount()).To(BeZero())
		})
	})

	Context("when the source name matches more than one group", func() {
		BeforeEach(func() {
			scaling.GetGroupsReturnsOnCall(0, []models.ScalingGroup{sourceGroup, sourceGroup}, nil)
		})

		It("fails with SourceNotFoundError without creating anything", func() {
			Expect(err).To(BeAssignableToTypeOf(&SourceNotFoundError{}))
			Expect(scaling.CreateGroupCallCount()).To(BeZero())
		})
	})

	Context("when the launch configuration is not found", func() {
		BeforeEach(func() {
			scaling.GetLaunchConfigurationsReturns([]models.LaunchConfiguration{}, nil)
		})

		It("fails with LookupError without creating anything", func() {
			Expect(err).To(BeAssignableToTypeOf(&LookupError{}))
			Expect(scaling.CreateGroupCallCount()).To(BeZero())
		})
	})

	Context("when the provider rejects group creation", func() {
		BeforeEach(func() {
			scaling.CreateGroupReturns(errors.New("group already exists"))
		})

		It("fails with CreationError and creates no policies or alarms", func() {
			var creationErr *CreationError
			Expect(errors.As(err, &creationErr)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("group already exists"))
			Expect(scaling.CreatePolicyCallCount()).To(BeZero())
			Expect(alarms.CreateAlarmCallCount()).To(BeZero())
		})
	})

	Context("when the provider rejects policy creation", func() {
		BeforeEach(func() {
			scaling.CreatePolicyReturnsOnCall(0, "", errors.New("rejected"))
		})

		It("fails with CreationError and creates no alarms", func() {
			var creationErr *CreationError
			Expect(errors.As(err, &creationErr)).To(BeTrue())
			Expect(alarms.CreateAlarmCallCount()).To(BeZero())
		})
	})

	Context("when the provider rejects alarm creation", func() {
		BeforeEach(func() {
			alarms.CreateAlarmReturns(errors.New("rejected"))
		})

		It("fails with CreationError after the first alarm", func() {
			var creationErr *CreationError
			Expect(errors.As(err, &creationErr)).To(BeTrue())
			Expect(alarms.CreateAlarmCallCount()).To(Equal(1))
		})
	})

	Context("when the alarm lookup does not return exactly one match", func() {
		BeforeEach(func() {
			alarms.GetAlarmsStub = nil
			alarms.GetAlarmsReturns([]models.MetricAlarm{}, nil)
		})

		It("fails with LookupError", func() {
			Expect(err).To(BeAssignableToTypeOf(&LookupError{}))
			Expect(alarms.CreateAlarmCallCount()).To(BeZero())
		})
	})

	Context("when the new group cannot be re-fetched", func() {
		BeforeEach(func() {
			scaling.GetGroupsReturnsOnCall(1, []models.ScalingGroup{}, nil)
		})

		It("fails with LookupError before creating policies", func() {
			Expect(err).To(BeAssignableToTypeOf(&LookupError{}))
			Expect(scaling.CreatePolicyCallCount()).To(BeZero())
		})
	})

	Context("when the source group has no policies", func() {
		BeforeEach(func() {
			scaling.GetPoliciesReturns([]models.ScalingPolicy{}, nil)
		})

		It("creates the group and nothing else", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(scaling.CreateGroupCallCount()).To(Equal(1))
			Expect(scaling.CreatePolicyCallCount()).To(BeZero())
			Expect(alarms.CreateAlarmCallCount()).To(BeZero())
		})
	})

	Context("when the request is incomplete", func() {
		BeforeEach(func() {
			req.NewGroupName = ""
		})

		It("fails before any provider call", func() {
			Expect(err).To(MatchError(ContainSubstring("new group name is empty")))
			Expect(scaling.GetGroupsCallCount()).To(BeZero())
		})
	})

	Context("when waiting is requested without a timeout", func() {
		BeforeEach(func() {
			req.WaitForInstances = true
			req.WaitTimeout = 0
		})

		It("fails before any provider call", func() {
			Expect(err).To(MatchError(ContainSubstring("wait timeout must be positive")))
			Expect(scaling.GetGroupsCallCount()).To(BeZero())
		})
	})
})
