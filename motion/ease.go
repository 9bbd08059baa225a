package motion

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// Ease names an easing curve.
type Ease string

const (
	Linear       Ease = "linear"
	InQuad       Ease = "inQuad"
	OutQuad      Ease = "outQuad"
	InOutQuad    Ease = "inOutQuad"
	InCubic      Ease = "inCubic"
	OutCubic     Ease = "outCubic"
	InOutCubic   Ease = "inOutCubic"
	InSine       Ease = "inSine"
	OutSine      Ease = "outSine"
	InOutSine    Ease = "inOutSine"
	InExpo       Ease = "inExpo"
	OutExpo      Ease = "outExpo"
	InOutExpo    Ease = "inOutExpo"
	InBack       Ease = "inBack"
	OutBack      Ease = "outBack"
	InOutBack    Ease = "inOutBack"
	InBounce     Ease = "inBounce"
	OutBounce    Ease = "outBounce"
	InOutBounce  Ease = "inOutBounce"
	InElastic    Ease = "inElastic"
	OutElastic   Ease = "outElastic"
	InOutElastic Ease = "inOutElastic"
)

var curves = map[Ease]func(float64) float64{
	Linear:       ease.Linear,
	InQuad:       ease.InQuad,
	OutQuad:      ease.OutQuad,
	InOutQuad:    ease.InOutQuad,
	InCubic:      ease.InCubic,
	OutCubic:     ease.OutCubic,
	InOutCubic:   ease.InOutCubic,
	InSine:       ease.InSine,
	OutSine:      ease.OutSine,
	InOutSine:    ease.InOutSine,
	InExpo:       ease.InExpo,
	OutExpo:      ease.OutExpo,
	InOutExpo:    ease.InOutExpo,
	InBack:       ease.InBack,
	OutBack:      ease.OutBack,
	InOutBack:    ease.InOutBack,
	InBounce:     ease.InBounce,
	OutBounce:    ease.OutBounce,
	InOutBounce:  ease.InOutBounce,
	InElastic:    ease.InElastic,
	OutElastic:   ease.OutElastic,
	InOutElastic: ease.InOutElastic,
}

// ParseEase validates an easing name. An empty name means Linear.
func ParseEase(name string) (Ease, error) {
	if name == "" {
		return Linear, nil
	}
	e := Ease(name)
	if _, ok := curves[e]; !ok {
		return "", fmt.Errorf("unknown ease %q", name)
	}
	return e, nil
}

// Func returns the curve for e, falling back to linear.
func (e Ease) Func() func(float64) float64 {
	if f, ok := curves[e]; ok {
		return f
	}
	return ease.Linear
}

// Eases lists the known curve names in sorted order.
func Eases() []string {
	names := make([]string, 0, len(curves))
	for e := range curves {
		names = append(names, string(e))
	}
	sort.Strings(names)
	return names
}
