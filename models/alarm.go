package models

// GroupNameDimension is the alarm dimension tying a metric alarm to an auto
// scaling group.
const GroupNameDimension = "AutoScalingGroupName"

// MetricAlarm is a threshold trigger on a metric. It references its group
// through the GroupNameDimension entry of Dimensions and its scaling policy
// through AlarmActions.
type MetricAlarm struct {
	AlarmName               string            `json:"alarm_name"`
	AlarmDescription        string            `json:"alarm_description,omitempty"`
	MetricName              string            `json:"metric_name"`
	Namespace               string            `json:"namespace"`
	Statistic               string            `json:"statistic"`
	ComparisonOperator      string            `json:"comparison_operator"`
	Threshold               float64           `json:"threshold"`
	Period                  int32             `json:"period"`
	EvaluationPeriods       int32             `json:"evaluation_periods"`
	Unit                    string            `json:"unit,omitempty"`
	AlarmActions            []string          `json:"alarm_actions"`
	OKActions               []string          `json:"ok_actions,omitempty"`
	InsufficientDataActions []string          `json:"insufficient_data_actions,omitempty"`
	Dimensions              map[string]string `json:"dimensions"`
}
