// Package services contains the application services of the finance client:
// the Session (who is logged in, and with which credential) and the Summary
// aggregation shown on the landing view.
package services
