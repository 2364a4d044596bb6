package services

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pairlab/pairtinder/internal/repositories"
)

const exportSheet = "Projects"

type ExportService struct {
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
	tagRepo     *repositories.TagRepository
	matchRepo   *repositories.MatchPreferenceRepository
}

func NewExportService(projectRepo *repositories.ProjectRepository, userRepo *repositories.UserRepository,
	tagRepo *repositories.TagRepository, matchRepo *repositories.MatchPreferenceRepository) *ExportService {
	return &ExportService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		tagRepo:     tagRepo,
		matchRepo:   matchRepo,
	}
}

// ExportProjects builds a spreadsheet of the full project board: one row per
// project with its owner, lifetime, tags and preference count.
func (s *ExportService) ExportProjects() (*excelize.File, error) {
	projects, err := s.projectRepo.All()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Name", "Description", "Owner", "Owner Email", "Created At", "Expires On", "Tags", "Preferences"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, project := range projects {
		owner, err := s.userRepo.GetByID(project.OwnerID.String())
		if err != nil {
			return nil, err
		}
		tags, err := s.tagRepo.GetLabelsByProjectID(project.ID.String())
		if err != nil {
			return nil, err
		}
		prefCount, err := s.matchRepo.CountByProjectID(project.ID.String())
		if err != nil {
			return nil, err
		}

		values := []interface{}{
			project.ID.String(),
			project.Name,
			project.Description,
			owner.Name,
			owner.Email,
			project.CreatedAt.Format("2006-01-02 15:04:05"),
			project.ExpiresOn.Format("2006-01-02 15:04:05"),
			strings.Join(tags, ", "),
			prefCount,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
