package progression

import "github.com/misterclayt0n/dandelion/internal/models"

const (
	ScaleFactor float32 = 50.0
	biasBase    float32 = 1.1

	SitupsBias   float32 = 1.0
	PushupsBias  float32 = 10.0
	DistanceBias float32 = 50.0
)

// ComputeExperience converts a workout snapshot into experience, floored to
// two decimals. Sit-ups are scaled in the integer domain before the bias is
// applied; push-ups and distance are scaled as reals.
//
// Every product is converted to float32 explicitly so the compiler cannot fuse
// it into a multiply-add and change the last bit.
func ComputeExperience(data models.WorkoutData) float32 {
	rawSitups := float32(float32(data.Situps*int32(ScaleFactor)) * pow32(biasBase, SitupsBias))
	rawPushups := float32(float32(data.Pushups*ScaleFactor) * pow32(biasBase, PushupsBias))
	rawDistance := float32(float32(data.RunDistance*ScaleFactor) * pow32(biasBase, DistanceBias))

	return RoundOrder(float32(rawSitups+rawPushups)+rawDistance, 2)
}
