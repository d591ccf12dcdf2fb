package ngo

import (
	"context"
	"fmt"
	"time"

	"ngoPortal/domain"
	"ngoPortal/pkg/logger"
	"ngoPortal/pkg/metrics"

	"github.com/go-playground/validator/v10"
)

type NGORepository interface {
	Create(ctx context.Context, ngo *domain.NGO) error
	FindByID(ctx context.Context, id uint) (domain.NGO, error)
	FindAll(ctx context.Context) ([]domain.NGO, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]domain.NGO, error)
}

type CampaignRepository interface {
	FindByIDAndNGO(ctx context.Context, id, ngoID uint) (domain.Campaign, error)
}

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *domain.Volunteer) error
	FindDetailsByUser(ctx context.Context, userID uint) ([]domain.VolunteerDetail, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) (err error)
}

type ngoService struct {
	ngoRepo       NGORepository
	campaignRepo  CampaignRepository
	volunteerRepo VolunteerRepository
	userRepo      UserRepository
	notifRepo     NotificationRepository
	validate      *validator.Validate
}

const (
	SubjectNewVolunteer   = "New volunteer application"
	EmailBodyNewVolunteer = `%v applied to volunteer for "%v" (%v).</br></br>Contact: %v, %v`
)

func NewNGOService(
	ngoRepo NGORepository,
	campaignRepo CampaignRepository,
	volunteerRepo VolunteerRepository,
	userRepo UserRepository,
	notifRepo NotificationRepository,
	validate *validator.Validate,
) *ngoService {
	return &ngoService{
		ngoRepo:       ngoRepo,
		campaignRepo:  campaignRepo,
		volunteerRepo: volunteerRepo,
		userRepo:      userRepo,
		notifRepo:     notifRepo,
		validate:      validate,
	}
}

func (s *ngoService) CreateNGO(ctx context.Context, ngo *domain.NGO) (domain.NGO, error) {
	if err := s.validate.Var(ngo.Name, "required"); err != nil {
		return domain.NGO{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	if ngo.OwnerID == 0 {
		return domain.NGO{}, fmt.Errorf("%w: missing owner", domain.ErrInvalidInput)
	}

	if err := s.ngoRepo.Create(ctx, ngo); err != nil {
		logger.Error("Failed to create ngo", err)
		return domain.NGO{}, err
	}

	return *ngo, nil
}

func (s *ngoService) GetAllNGOs(ctx context.Context) ([]domain.NGO, error) {
	ngos, err := s.ngoRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to fetch ngos", err)
		return nil, err
	}

	return ngos, nil
}

func (s *ngoService) GetNGOByID(ctx context.Context, id uint) (domain.NGO, error) {
	return s.ngoRepo.FindByID(ctx, id)
}

func (s *ngoService) GetMyNGOs(ctx context.Context, ownerID uint) ([]domain.NGO, error) {
	ngos, err := s.ngoRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to fetch owned ngos", err)
		return nil, err
	}

	return ngos, nil
}

// Volunteer records the user's application to a campaign. The campaign must
// exist under the given NGO; the storage-level unique index rejects a second
// application for the same (user, campaign) pair. The returned notification
// payload is also mailed to the NGO owner best-effort.
func (s *ngoService) Volunteer(ctx context.Context, userID, ngoID, campaignID uint) (domain.Volunteer, domain.VolunteerNotification, error) {
	campaign, err := s.campaignRepo.FindByIDAndNGO(ctx, campaignID, ngoID)
	if err != nil {
		return domain.Volunteer{}, domain.VolunteerNotification{}, err
	}

	volunteer := domain.Volunteer{
		UserID:     userID,
		CampaignID: campaign.ID,
		Status:     domain.VolunteerStatusPending,
		AppliedAt:  time.Now(),
	}

	if err := s.volunteerRepo.Create(ctx, &volunteer); err != nil {
		return domain.Volunteer{}, domain.VolunteerNotification{}, err
	}

	metrics.VolunteerApplications.Inc()

	notification, err := s.buildNotification(ctx, userID, ngoID, campaign)
	if err != nil {
		// The application itself is already recorded.
		logger.Warn("Failed to build volunteer notification", err)
		return volunteer, domain.VolunteerNotification{}, nil
	}

	if notification.OwnerEmail != "" {
		err = s.notifRepo.SendEmail(
			notification.OwnerName,
			notification.OwnerEmail,
			SubjectNewVolunteer,
			fmt.Sprintf(EmailBodyNewVolunteer,
				notification.ApplicantName,
				notification.CampaignTitle,
				notification.NGOName,
				notification.ApplicantEmail,
				notification.ApplicantMobile,
			),
		)
		if err != nil {
			logger.Warn("Failed to send volunteer notification email", err)
		}
	}

	return volunteer, notification, nil
}

func (s *ngoService) buildNotification(ctx context.Context, userID, ngoID uint, campaign domain.Campaign) (domain.VolunteerNotification, error) {
	applicant, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.VolunteerNotification{}, err
	}

	ngo, err := s.ngoRepo.FindByID(ctx, ngoID)
	if err != nil {
		return domain.VolunteerNotification{}, err
	}

	notification := domain.VolunteerNotification{
		ApplicantName:   applicant.Name,
		ApplicantEmail:  applicant.Email,
		ApplicantMobile: applicant.Mobile,
		CampaignTitle:   campaign.Title,
		NGOName:         ngo.Name,
	}

	owner, err := s.userRepo.FindByID(ctx, ngo.OwnerID)
	if err != nil {
		logger.Warn("Failed to resolve ngo owner for notification", err)
		return notification, nil
	}

	notification.OwnerName = owner.Name
	notification.OwnerEmail = owner.Email
	return notification, nil
}

func (s *ngoService) GetMyVolunteers(ctx context.Context, userID uint) ([]domain.VolunteerDetail, error) {
	volunteers, err := s.volunteerRepo.FindDetailsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to fetch volunteer applications", err)
		return nil, err
	}

	if volunteers == nil {
		volunteers = []domain.VolunteerDetail{}
	}

	return volunteers, nil
}
