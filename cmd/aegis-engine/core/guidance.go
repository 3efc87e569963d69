package core

// PNCommand computes the commanded acceleration for a True 3-D Proportional
// Navigation guidance law with gain N.
//
// r is the line-of-sight vector from missile to target (target.Pos -
// missile.Pos); vRel is the closing velocity (target.Vel - missile.Vel).
// The LOS rate vector Ω = (r × vRel) / (r · r); the commanded acceleration
// is the equivalent form a_cmd = N · |vRel| · (Ω × r̂), which avoids
// computing a separate closing-speed-along-LOS term.
//
// Returns the zero vector if r is the zero vector (collocated missile and
// target — guidance is undefined and skipped per the degenerate-geometry
// fallback).
func PNCommand(r, vRel Vec3, n float64) Vec3 {
	rr := r.LenSq()
	if rr == 0 {
		return Vec3{}
	}
	omega := r.Cross(vRel).Scale(1 / rr)
	rHat := r.Unit()
	return omega.Cross(rHat).Scale(n * vRel.Norm())
}
