package order

import "time"

type PaymentStage string

const (
	StageProcessing PaymentStage = "processing"
	StageVerifying  PaymentStage = "verifying"
	StageApproved   PaymentStage = "approved"
	StageCompleted  PaymentStage = "completed"
)

// StageAt simulates the payment gateway: each stage lasts one interval.
func StageAt(elapsed, interval time.Duration) PaymentStage {
	if interval <= 0 {
		return StageCompleted
	}
	switch steps := elapsed / interval; {
	case elapsed < 0 || steps == 0:
		return StageProcessing
	case steps == 1:
		return StageVerifying
	case steps == 2:
		return StageApproved
	default:
		return StageCompleted
	}
}

// Progress is the share of the simulation already elapsed, in percent.
func Progress(elapsed, interval time.Duration) int {
	if interval <= 0 {
		return 100
	}
	total := 3 * interval
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 100
	}
	return int(elapsed * 100 / total)
}

type Confirmation struct {
	Details           *Details
	EstimatedDelivery time.Time
	PaymentMethod     string
}

func Confirm(d *Details, deliveryEstimate time.Duration) Confirmation {
	return Confirmation{
		Details:           d,
		EstimatedDelivery: d.OrderDate.Add(deliveryEstimate),
		PaymentMethod:     PaymentMethod,
	}
}
