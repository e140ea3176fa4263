package funnel

// State identifies a position in the conversation flow. The zero value
// means the user has no active dialog.
type State string

const (
	StateIdle              State = ""
	StateCheckSubscription State = "check_subscription"
	StateQ1Sphere          State = "q1_sphere"
	StateQ2Support         State = "q2_support"
	StateQ3Attitude        State = "q3_attitude"
	StateIntensiveIntro    State = "intensive_intro"
	StateDay1              State = "day_1"
	StateDay2              State = "day_2"
	StateDay3              State = "day_3"
	StateSalesMain         State = "sales_main"
	StateSalesGroupSelect  State = "sales_group_select"
	StateTopicDetail       State = "topic_detail"
	StateFinished          State = "finished"
)
