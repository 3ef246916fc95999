package kafka

// Producer Topics
const (
	TopicAnalysisCompleted = "brandpulse.analysis.completed"
)

// Event Types (carried in the "event" header)
const (
	EventTypeAnalysisCompleted = "analysis.completed"
)
