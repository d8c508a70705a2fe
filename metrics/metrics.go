// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OtpRequested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "starboard_otp_requested_total",
		Help: "One-time codes issued.",
	})

	OtpVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "starboard_otp_verifications_total",
		Help: "OTP verification attempts by result.",
	}, []string{"result"})

	OtpDeliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "starboard_otp_delivery_failures_total",
		Help: "OTP webhook deliveries that failed and fell back to the log.",
	})

	StarsLogged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "starboard_stars_logged_total",
		Help: "Stars logged by parents, excluding bonuses.",
	})

	BonusStars = promauto.NewCounter(prometheus.CounterOpts{
		Name: "starboard_bonus_stars_total",
		Help: "Bonus stars granted for streaks.",
	})

	AchievementsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "starboard_achievements_unlocked_total",
		Help: "Achievements unlocked by kind.",
	}, []string{"kind"})
)
