package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"asgcopy/cloner"
	"asgcopy/cloner/config"
	"asgcopy/cloud/aws"
	"asgcopy/helpers"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

func main() {
	var (
		path                    string
		sourceGroupName         string
		newGroupName            string
		launchConfigurationName string
		loadBalancerNames       string
		waitForInstances        bool
		waitTimeout             time.Duration
	)
	flag.StringVar(&path, "c", "", "config file")
	flag.StringVar(&sourceGroupName, "source-group", "", "name of the auto scaling group to copy")
	flag.StringVar(&newGroupName, "name", "", "name of the new auto scaling group")
	flag.StringVar(&launchConfigurationName, "launch-configuration", "", "launch configuration for the new group")
	flag.StringVar(&loadBalancerNames, "load-balancers", "", "comma separated load balancer names overriding the source group's")
	flag.BoolVar(&waitForInstances, "wait", false, "wait until new instances are healthy and registered")
	flag.DurationVar(&waitTimeout, "wait-timeout", 0, "wait deadline, overrides the configured default")
	flag.Parse()

	if path == "" {
		fmt.Fprintln(os.Stderr, "missing config file")
		os.Exit(1)
	}
	if sourceGroupName == "" || newGroupName == "" || launchConfigurationName == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: -source-group, -name and -launch-configuration must be set")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	configFile.Close()

	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "asgcopy")

	ctx := context.Background()
	client, err := aws.New(ctx, &conf.AWS, logger.Session("aws"))
	if err != nil {
		logger.Error("failed to connect to cloud provider", err, lager.Data{"region": conf.AWS.Region})
		os.Exit(1)
	}

	groupCloner := cloner.NewGroupCloner(logger, client, client, client, clock.NewClock(), conf.Wait.PollInterval, conf.Wait.MaxPollInterval)

	timeout := conf.Wait.Timeout
	if waitTimeout > 0 {
		timeout = waitTimeout
	}

	properties, err := groupCloner.CloneGroup(ctx, cloner.CloneRequest{
		SourceGroupName:         sourceGroupName,
		NewGroupName:            newGroupName,
		LaunchConfigurationName: launchConfigurationName,
		LoadBalancerNames:       splitNames(loadBalancerNames),
		WaitForInstances:        waitForInstances,
		WaitTimeout:             timeout,
	})
	if err != nil {
		logger.Error("failed to copy auto scaling group", err, lager.Data{"sourceGroupName": sourceGroupName, "newGroupName": newGroupName})
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(properties); err != nil {
		logger.Error("failed to write group properties", err)
		os.Exit(1)
	}
}

func splitNames(names string) []string {
	var result []string
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			result = append(result, name)
		}
	}
	return result
}
