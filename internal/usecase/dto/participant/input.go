package participantdto

type RegisterInput struct {
	ParticipantID   string
	SessionID       string
	Username        string
	Gender          string
	Age             int
	Place           string
	NativeLanguage  string
	PriorExperience string
}

type ConsentInput struct {
	ParticipantID string
	ConsentGiven  bool
}
