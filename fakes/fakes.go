package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_scaling_client.go ../cloud ScalingClient
//counterfeiter:generate -o ./fake_alarm_client.go ../cloud AlarmClient
//counterfeiter:generate -o ./fake_load_balancer_client.go ../cloud LoadBalancerClient
