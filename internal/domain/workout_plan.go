package domain

type Exercise struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type WorkoutPlan struct {
	PlanID          string     `json:"plan_id"`
	UserID          string     `json:"user_id"`
	PlanDate        string     `json:"plan_date"`
	Exercises       []Exercise `json:"exercises"`
	Recommendations string     `json:"recommendations"`
	CreatedAt       string     `json:"created_at,omitempty"`
}

type GeneratedPlan struct {
	PlanID          string     `json:"plan_id"`
	Recommendations string     `json:"recommendations"`
	Exercises       []Exercise `json:"exercises"`
	Message         string     `json:"message"`
}
