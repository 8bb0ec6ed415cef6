package models

const (
	ScaleUpSuffix   = "ScaleUp"
	ScaleDownSuffix = "ScaleDown"
)

// ScalingPolicy belongs to exactly one group, referenced by name.
type ScalingPolicy struct {
	PolicyName        string `json:"policy_name"`
	PolicyARN         string `json:"policy_arn,omitempty"`
	GroupName         string `json:"group_name"`
	AdjustmentType    string `json:"adjustment_type"`
	ScalingAdjustment int32  `json:"scaling_adjustment"`
	MinAdjustmentStep int32  `json:"min_adjustment_step"`
	Cooldown          int32  `json:"cooldown"`
}

// AlarmSuffix maps a strictly positive adjustment to the scale-up naming
// convention, anything else to scale-down.
func (p *ScalingPolicy) AlarmSuffix() string {
	if p.ScalingAdjustment > 0 {
		return ScaleUpSuffix
	}
	return ScaleDownSuffix
}
