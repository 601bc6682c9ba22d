package domain

// SeedData is the initial data set loaded into an empty database.
type SeedData struct {
	Username    string
	Password    string
	DisplayName string
	Court       string
	Cases       []SeedCase
}

// SeedCase is a case assigned to the seed identity.
type SeedCase struct {
	CaseNumber   string
	CaseName     string
	CaseCategory string
	LegalSection string
	Parties      string
	Status       string
	NextHearing  string
	FilingDate   string
	Description  string
}

// DefaultSeed is the demonstration judge and their four cases.
func DefaultSeed(password string) SeedData {
	return SeedData{
		Username:    "judge1",
		Password:    password,
		DisplayName: "Justice Sharma",
		Court:       "Delhi High Court",
		Cases: []SeedCase{
			{
				CaseNumber:   "CRL/2024/125",
				CaseName:     "State vs Rajesh Kumar Murder Case",
				CaseCategory: "Criminal",
				LegalSection: "IPC 302",
				Parties:      "State of Delhi vs Rajesh Kumar",
				Status:       "Trial Stage",
				NextHearing:  "15 Dec 2024",
				FilingDate:   "15 Jan 2024",
				Description:  "Murder case under IPC Section 302. The accused is charged with the murder of Mr. Amit Verma. Currently in trial stage with 5 witnesses examined.",
			},
			{
				CaseNumber:   "CIVIL/2024/89",
				CaseName:     "ABC Corporation vs XYZ Ltd Contract Dispute",
				CaseCategory: "Civil",
				LegalSection: "Contract Act Section 73",
				Parties:      "M/S ABC Corporation vs M/S XYZ Ltd",
				Status:       "Evidence Stage",
				NextHearing:  "20 Dec 2024",
				FilingDate:   "20 Feb 2024",
				Description:  "Commercial contract dispute involving breach of agreement. Damages claimed: ₹50 lakhs. Currently in evidence recording stage.",
			},
			{
				CaseNumber:   "BAIL/2024/45",
				CaseName:     "Sanjay Mehta Bail Application",
				CaseCategory: "Criminal",
				LegalSection: "CrPC 439",
				Parties:      "Sanjay Mehta vs State of Delhi",
				Status:       "Arguments",
				NextHearing:  "10 Dec 2024",
				FilingDate:   "10 Mar 2024",
				Description:  "Bail application in money laundering case. Arguments completed, judgment reserved.",
			},
			{
				CaseNumber:   "MAT/2024/67",
				CaseName:     "Priya Sharma Divorce Case",
				CaseCategory: "Family",
				LegalSection: "HMA Section 13",
				Parties:      "Priya Sharma vs Raj Sharma",
				Status:       "Mediation",
				NextHearing:  "25 Dec 2024",
				FilingDate:   "25 Jan 2024",
				Description:  "Divorce petition on grounds of cruelty. Currently in mediation process.",
			},
		},
	}
}
