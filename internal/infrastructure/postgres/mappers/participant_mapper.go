package mappers

import (
	"github.com/LavaJover/cognit-service/internal/domain"
	"github.com/LavaJover/cognit-service/internal/infrastructure/postgres/models"
)

func ToGORMParticipant(participant *domain.Participant) *models.ParticipantModel {
	return &models.ParticipantModel{
		ID:              participant.ID,
		ExternalID:      participant.ExternalID,
		SessionID:       participant.SessionID,
		Username:        participant.Username,
		Gender:          participant.Gender,
		Age:             participant.Age,
		Place:           participant.Place,
		NativeLanguage:  participant.NativeLanguage,
		PriorExperience: participant.PriorExperience,
		ConsentGiven:    participant.ConsentGiven,
		ConsentAt:       participant.ConsentAt,
		PaymentStatus:   participant.PaymentStatus,
		CreatedAt:       participant.CreatedAt,
	}
}

func ToDomainParticipant(model *models.ParticipantModel) *domain.Participant {
	return &domain.Participant{
		ID:              model.ID,
		ExternalID:      model.ExternalID,
		SessionID:       model.SessionID,
		Username:        model.Username,
		Gender:          model.Gender,
		Age:             model.Age,
		Place:           model.Place,
		NativeLanguage:  model.NativeLanguage,
		PriorExperience: model.PriorExperience,
		ConsentGiven:    model.ConsentGiven,
		ConsentAt:       model.ConsentAt,
		PaymentStatus:   model.PaymentStatus,
		CreatedAt:       model.CreatedAt,
	}
}
