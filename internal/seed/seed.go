// Package seed inserts the pre-loaded alumni dataset on startup. Dataset
// records are unclaimed placeholders: they appear in the directory but
// cannot log in until the owner registers with the matching email.
package seed

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/repositories"
	"github.com/deniz/alumlink/internal/pkg/auth"
)

// datasetPassword is hashed into every seeded placeholder. It can never
// authenticate because login rejects unclaimed alumni before comparing
// passwords, and claiming replaces the hash.
const datasetPassword = "DatasetPlaceholder@123"

type alumniRecord struct {
	Name       string
	Email      string
	Department string
	Batch      int
	Company    string
	JobTitle   string
	Location   string
}

// CreateDefaultData inserts the alumni dataset, skipping records whose email
// already exists. A failure on one record never aborts the rest.
func CreateDefaultData(ctx context.Context, userRepo repositories.UserRepository, lgr zerolog.Logger) error {
	hashed, err := auth.HashPassword(datasetPassword)
	if err != nil {
		return err
	}

	added, skipped := 0, 0
	for _, record := range alumniDataset {
		email := strings.ToLower(record.Email)

		exists, err := userRepo.EmailExists(ctx, email)
		if err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Failed to check seed record")
			continue
		}
		if exists {
			skipped++
			continue
		}

		firstName, lastName := splitName(record.Name)
		user := &models.User{
			FirstName:      firstName,
			LastName:       lastName,
			Email:          email,
			Password:       hashed,
			Role:           models.RoleAlumni,
			IsRegistered:   false,
			Department:     record.Department,
			GraduationYear: record.Batch,
			CurrentCompany: record.Company,
			CurrentRole:    record.JobTitle,
			Location:       record.Location,
			CreatedAt:      time.Now(),
		}

		if _, err := userRepo.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Failed to insert seed record")
			continue
		}
		added++
	}

	lgr.Info().Int("added", added).Int("skipped", skipped).Msg("Alumni dataset seeding complete")
	return nil
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

var alumniDataset = []alumniRecord{
	{"John Doe", "john.doe@example.com", "Computer Science", 2020, "Google", "Software Engineer", "Mountain View, CA"},
	{"Jane Smith", "jane.smith@example.com", "Electrical Engineering", 2019, "Apple", "Hardware Engineer", "Cupertino, CA"},
	{"Michael Johnson", "michael.j@example.com", "Mechanical Engineering", 2018, "Tesla", "Mechanical Design Engineer", "Palo Alto, CA"},
	{"Emily Davis", "emily.davis@example.com", "Civil Engineering", 2021, "Bechtel", "Civil Engineer", "San Francisco, CA"},
	{"David Wilson", "david.wilson@example.com", "Computer Science", 2017, "Microsoft", "Product Manager", "Redmond, WA"},
	{"Sarah Brown", "sarah.brown@example.com", "Business Administration", 2022, "Amazon", "Marketing Specialist", "Seattle, WA"},
	{"Chris Martinez", "chris.martinez@example.com", "Information Technology", 2020, "Oracle", "Database Administrator", "Austin, TX"},
	{"Amanda Garcia", "amanda.garcia@example.com", "Psychology", 2019, "Kaiser Permanente", "Clinical Psychologist", "Oakland, CA"},
	{"James Rodriguez", "james.r@example.com", "Computer Science", 2021, "Meta", "Data Scientist", "Menlo Park, CA"},
	{"Robert Lee", "robert.lee@example.com", "Electrical Engineering", 2018, "Intel", "Process Engineer", "Santa Clara, CA"},
	{"Jennifer White", "jennifer.white@example.com", "Marketing", 2020, "Salesforce", "Account Executive", "San Francisco, CA"},
	{"William Harris", "william.harris@example.com", "Finance", 2017, "Goldman Sachs", "Investment Banker", "New York, NY"},
	{"Linda Clark", "linda.clark@example.com", "Computer Science", 2022, "Netflix", "UI Engineer", "Los Gatos, CA"},
	{"Richard Lewis", "richard.lewis@example.com", "Mechanical Engineering", 2019, "Boeing", "Aerospace Engineer", "Seattle, WA"},
	{"Susan Walker", "susan.walker@example.com", "Education", 2018, "Stanford University", "Professor", "Stanford, CA"},
	{"Joseph Hall", "joseph.hall@example.com", "Computer Science", 2021, "Adobe", "Software Developer", "San Jose, CA"},
	{"Jessica Allen", "jessica.allen@example.com", "Biomedical Engineering", 2020, "Genentech", "Research Associate", "South San Francisco, CA"},
	{"Thomas Young", "thomas.young@example.com", "Physics", 2017, "NASA", "Physicist", "Houston, TX"},
	{"Karen King", "karen.king@example.com", "Law", 2019, "Latham & Watkins", "Attorney", "Los Angeles, CA"},
	{"Charles Wright", "charles.wright@example.com", "Architecture", 2018, "Gensler", "Architect", "San Francisco, CA"},
	{"Patricia Scott", "patricia.scott@example.com", "Nursing", 2021, "UCSF Health", "Registered Nurse", "San Francisco, CA"},
	{"Daniel Torres", "daniel.torres@example.com", "Computer Science", 2022, "Uber", "Mobile Engineer", "San Francisco, CA"},
	{"Barbara Nguyen", "barbara.nguyen@example.com", "Chemistry", 2020, "Pfizer", "Chemist", "New York, NY"},
	{"Matthew Hill", "matthew.hill@example.com", "History", 2017, "Museum of Modern Art", "Curator", "New York, NY"},
	{"Lisa Flores", "lisa.flores@example.com", "Sociology", 2019, "Nonprofit Org", "Program Coordinator", "Chicago, IL"},
	{"Anthony Green", "anthony.green@example.com", "Political Science", 2018, "Government", "Policy Analyst", "Washington, D.C."},
	{"Nancy Adams", "nancy.adams@example.com", "Environmental Science", 2021, "EPA", "Environmental Scientist", "Denver, CO"},
	{"Mark Baker", "mark.baker@example.com", "Mathematics", 2020, "Hedge Fund", "Quantitative Analyst", "New York, NY"},
	{"Sandra Gonzalez", "sandra.gonzalez@example.com", "Journalism", 2019, "CNN", "Journalist", "Atlanta, GA"},
	{"Steven Nelson", "steven.nelson@example.com", "Graphic Design", 2022, "Design Studio", "Graphic Designer", "Portland, OR"},
}
