// internal/utils/math.go
package utils

import "math"

// Repeat зацикливает t в диапазоне [0, length)
func Repeat(t, length float64) float64 {
	return t - math.Floor(t/length)*length
}

// DeltaAngle возвращает кратчайшую разницу между двумя углами в градусах, [-180, 180]
func DeltaAngle(current, target float64) float64 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// NormalizeAngle нормализует угол в градусах в диапазон [0, 360)
func NormalizeAngle(angle float64) float64 {
	return Repeat(angle, 360)
}

// SmoothDamp плавно сдвигает current к target (критически демпфированная пружина).
// velocity хранит состояние между вызовами. При dt <= 0 ничего не меняется.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTo := target
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Не перелетаем цель
	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		*velocity = (output - originalTo) / dt
	}
	return output
}

// SmoothDampAngle — SmoothDamp для углов в градусах, по кратчайшему пути
func SmoothDampAngle(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, dt)
}
