// Package quotaservice implements the admission and capacity engine inside
// the admissions context.
//
// The module owns quota configuration (open/blocked mode with an optional
// global ceiling), per-municipality capacities, and the registration-time
// admission decision that confirms or waitlists an applicant without ever
// exceeding a capacity under concurrent registrations. Business rules live
// in application/domain layers; storage and transport stay behind ports and
// adapters.
package quotaservice
