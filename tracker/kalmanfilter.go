package tracker

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Measurement represents a 1x4 box measurement in Xyah (center x, center y,
// aspect ratio, height) format using a slice of float32
type Measurement []float32

const (
	// stateDim is the size of the filter state vector
	// [cx, cy, aspect, h, vcx, vcy, vaspect, vh]
	stateDim = 8
	// measDim is the size of a box measurement [cx, cy, aspect, h]
	measDim = 4
)

// KalmanFilter is a constant velocity Kalman filter over an 8 dimensional
// box state.  Each of the four leading position/shape terms advances by its
// paired trailing velocity term on every Predict call
type KalmanFilter struct {
	// motionMat is the state transition matrix F
	motionMat *mat.Dense
	// updateMat is the measurement matrix H projecting state to box space
	updateMat *mat.Dense
	// processCov is the process noise Q
	processCov *mat.Dense
	// measCov is the measurement noise R
	measCov *mat.SymDense
	// mean is the state vector x
	mean *mat.VecDense
	// covariance is the state covariance P
	covariance *mat.Dense
	// initialized is set once the first measurement has seeded the state
	initialized bool
}

// NewKalmanFilter initializes and returns a new KalmanFilter.  Position and
// shape start tightly bound while the velocity terms carry a loose prior so
// the first few updates settle the motion estimate quickly
func NewKalmanFilter() *KalmanFilter {

	// transition matrix is identity with unit coupling from each
	// position/shape term to its velocity term
	motionMat := mat.NewDense(stateDim, stateDim, nil)

	for i := 0; i < stateDim; i++ {
		motionMat.Set(i, i, 1.0)
	}

	for i := 0; i < measDim; i++ {
		motionMat.Set(i, measDim+i, 1.0)
	}

	// measurement matrix selects the four position/shape terms
	updateMat := mat.NewDense(measDim, stateDim, nil)

	for i := 0; i < measDim; i++ {
		updateMat.Set(i, i, 1.0)
	}

	// initial covariance, velocities are unobserved so start loose
	covariance := mat.NewDense(stateDim, stateDim, nil)

	for i := 0; i < measDim; i++ {
		covariance.Set(i, i, 10.0)
		covariance.Set(measDim+i, measDim+i, 10.0*1000.0)
	}

	// process noise, velocities drift slowly between frames
	processCov := mat.NewDense(stateDim, stateDim, nil)

	for i := 0; i < measDim; i++ {
		processCov.Set(i, i, 1.0)
		processCov.Set(measDim+i, measDim+i, 0.01)
	}

	// measurement noise, detector boxes are trusted
	measCov := mat.NewSymDense(measDim, nil)

	for i := 0; i < measDim; i++ {
		measCov.SetSym(i, i, 0.1)
	}

	return &KalmanFilter{
		motionMat:  motionMat,
		updateMat:  updateMat,
		processCov: processCov,
		measCov:    measCov,
		mean:       mat.NewVecDense(stateDim, nil),
		covariance: covariance,
	}
}

// IsInitialized returns whether the filter state has been seeded by a
// first measurement
func (kf *KalmanFilter) IsInitialized() bool {
	return kf.initialized
}

// Predict advances the state one frame using the constant velocity motion
// model, x = F*x and P = F*P*Ft + Q.  Calling Predict before the filter has
// been initialized is a no-op
func (kf *KalmanFilter) Predict() {

	if !kf.initialized {
		return
	}

	// x = F*x
	next := mat.NewVecDense(stateDim, nil)
	next.MulVec(kf.motionMat, kf.mean)
	kf.mean.CopyVec(next)

	// P = F*P*Ft + Q
	fp := mat.NewDense(stateDim, stateDim, nil)
	fp.Mul(kf.motionMat, kf.covariance)

	fpf := mat.NewDense(stateDim, stateDim, nil)
	fpf.Mul(fp, kf.motionMat.T())
	fpf.Add(fpf, kf.processCov)

	kf.covariance = fpf
}

// Update corrects the state with a new box measurement.  The first call
// seeds the position/shape terms directly from the measurement, leaving
// velocities at zero.  Subsequent calls perform the standard Kalman
// correction with the gain solved through a Cholesky factorization of the
// innovation covariance.  A factorization failure is returned as an error
// and leaves the state unchanged
func (kf *KalmanFilter) Update(z Measurement) error {

	if !kf.initialized {
		for i := 0; i < measDim; i++ {
			kf.mean.SetVec(i, float64(z[i]))
		}

		kf.initialized = true
		return nil
	}

	// project the state mean into measurement space
	projMean := mat.NewVecDense(measDim, nil)
	projMean.MulVec(kf.updateMat, kf.mean)

	// innovation covariance S = H*P*Ht + R
	hp := mat.NewDense(measDim, stateDim, nil)
	hp.Mul(kf.updateMat, kf.covariance)

	hph := mat.NewDense(measDim, measDim, nil)
	hph.Mul(hp, kf.updateMat.T())

	innovationCov := mat.NewSymDense(measDim, nil)

	for i := 0; i < measDim; i++ {
		for j := i; j < measDim; j++ {
			innovationCov.SetSym(i, j, (hph.At(i, j)+hph.At(j, i))/2)
		}
	}

	innovationCov.AddSym(innovationCov, kf.measCov)

	chol := mat.Cholesky{}

	if ok := chol.Factorize(innovationCov); !ok {
		return errors.New("failed to factorize innovation covariance")
	}

	// kalman gain K = P*Ht*inv(S), solved as Kt from S*Kt = (P*Ht)t
	b := mat.NewDense(stateDim, measDim, nil)
	b.Mul(kf.covariance, kf.updateMat.T())

	var gainT mat.Dense

	if err := chol.SolveTo(&gainT, b.T()); err != nil {
		return errors.New("failed to compute kalman gain")
	}

	// innovation y = z - H*x
	innovation := mat.NewVecDense(measDim, nil)

	for i := 0; i < measDim; i++ {
		innovation.SetVec(i, float64(z[i])-projMean.AtVec(i))
	}

	// x = x + K*y
	shift := mat.NewVecDense(stateDim, nil)
	shift.MulVec(gainT.T(), innovation)
	kf.mean.AddVec(kf.mean, shift)

	// P = P - K*S*Kt
	ks := mat.NewDense(stateDim, measDim, nil)
	ks.Mul(gainT.T(), innovationCov)

	ksk := mat.NewDense(stateDim, stateDim, nil)
	ksk.Mul(ks, &gainT)

	newCov := mat.NewDense(stateDim, stateDim, nil)
	newCov.Sub(kf.covariance, ksk)

	kf.covariance = newCov

	return nil
}

// StateRect derives the bounding box from the current state mean, using
// width = aspect * height around the tracked center point
func (kf *KalmanFilter) StateRect() Rect {

	height := float32(kf.mean.AtVec(3))
	width := float32(kf.mean.AtVec(2)) * height

	return NewRect(
		float32(kf.mean.AtVec(0))-width/2,
		float32(kf.mean.AtVec(1))-height/2,
		width,
		height,
	)
}

// StateMean returns a copy of the current state vector
func (kf *KalmanFilter) StateMean() []float32 {

	out := make([]float32, stateDim)

	for i := 0; i < stateDim; i++ {
		out[i] = float32(kf.mean.AtVec(i))
	}

	return out
}
