package domain

import "strings"

// Preset reasons a creator can pick when rejecting a submission.
const (
	ReasonLowQuality         = "LOW_QUALITY"
	ReasonFakeEngagement     = "FAKE_ENGAGEMENT"
	ReasonGuidelineViolation = "GUIDELINE_VIOLATION"
	ReasonWrongContent       = "WRONG_CONTENT"
	ReasonOther              = "OTHER"
)

var rejectPresets = map[string]string{
	ReasonLowQuality:         "Low quality content",
	ReasonFakeEngagement:     "Engagement appears to be fake or purchased",
	ReasonGuidelineViolation: "Post violates the campaign guidelines",
	ReasonWrongContent:       "Post is not about the campaign",
	ReasonOther:              "Rejected by the campaign creator",
}

// RejectReason resolves a creator supplied reason. Preset codes, matched
// case-insensitively, expand to their description; anything else is kept as
// free text. Blank reasons are invalid.
func RejectReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", Errorf(CodeInvalidInput, "reason is required")
	}
	if text, ok := rejectPresets[strings.ToUpper(reason)]; ok {
		return text, nil
	}
	return reason, nil
}
