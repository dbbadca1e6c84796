package services

import (
	"fmt"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/engine"
	"github.com/Anky1388/SFIRN/models"
)

type NGOService struct{}

func NewNGOService() *NGOService { return &NGOService{} }

type NGORequest struct {
	Name        string  `json:"name" binding:"required"`
	ContactName string  `json:"contact_name" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Address     string  `json:"address" binding:"required"`
	CapacityKg  float64 `json:"capacity_kg"`
	Active      *bool   `json:"active,omitempty"`
}

func (s *NGOService) CreateNGO(req NGORequest) (*models.NGO, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, fmt.Errorf("coordinates out of range: %w", engine.ErrInvalidInput)
	}
	if req.CapacityKg < 0 {
		return nil, fmt.Errorf("negative capacity: %w", engine.ErrInvalidInput)
	}

	ngo := &models.NGO{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Address:     req.Address,
		CapacityKg:  req.CapacityKg,
		Active:      true,
	}
	if req.Active != nil {
		ngo.Active = *req.Active
	}
	if err := config.DB.Create(ngo).Error; err != nil {
		return nil, err
	}
	return ngo, nil
}

func (s *NGOService) UpdateNGO(id uint, req NGORequest) (*models.NGO, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, fmt.Errorf("coordinates out of range: %w", engine.ErrInvalidInput)
	}

	var ngo models.NGO
	if err := config.DB.First(&ngo, id).Error; err != nil {
		return nil, err
	}
	ngo.Name = req.Name
	ngo.ContactName = req.ContactName
	ngo.Phone = req.Phone
	ngo.Email = req.Email
	ngo.Lat = req.Lat
	ngo.Lng = req.Lng
	ngo.Address = req.Address
	ngo.CapacityKg = req.CapacityKg
	if req.Active != nil {
		ngo.Active = *req.Active
	}
	if err := config.DB.Save(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (s *NGOService) ListNGOs(activeOnly bool) ([]models.NGO, error) {
	var ngos []models.NGO
	q := config.DB.Order("name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&ngos).Error
	return ngos, err
}

func (s *NGOService) GetNGO(id uint) (*models.NGO, error) {
	var ngo models.NGO
	if err := config.DB.First(&ngo, id).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

// FindNearby loads the active directory and hands ranking to the engine.
// The full candidate record comes back on each match so callers can show
// contact details without a second lookup.
func (s *NGOService) FindNearby(originLat, originLng float64, opts engine.MatchOptions) ([]engine.Match, error) {
	ngos, err := s.ListNGOs(true)
	if err != nil {
		return nil, err
	}

	candidates := make([]engine.Candidate, 0, len(ngos))
	for _, n := range ngos {
		candidates = append(candidates, engine.Candidate{
			ID:         n.ID,
			Name:       n.Name,
			Lat:        n.Lat,
			Lng:        n.Lng,
			CapacityKg: n.CapacityKg,
			Active:     n.Active,
		})
	}
	return engine.FindNearby(originLat, originLng, candidates, opts)
}
