package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the donation recording handler
	DonationRecordLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "portal_donation_record_latency_seconds",
		Help:    "Latency of donation recording",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of donations recorded
	DonationsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_donations_recorded_total",
		Help: "Total number of donations recorded",
	})

	// Total amount donated across all campaigns
	DonationAmountTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_donation_amount_total",
		Help: "Total amount donated across all campaigns",
	})

	// Total number of volunteer applications accepted
	VolunteerApplications = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_volunteer_applications_total",
		Help: "Total number of volunteer applications recorded",
	})
)

func Init() {
	prometheus.MustRegister(
		DonationRecordLatency,
		DonationsRecorded,
		DonationAmountTotal,
		VolunteerApplications,
	)
}
