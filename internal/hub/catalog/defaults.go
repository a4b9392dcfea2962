package catalog

import "github.com/community-support-hub/server/internal/hub/model"

// DefaultResources is the bundled catalog, always present even when the
// remote source is unreachable.
var DefaultResources = []model.Resource{
	{
		ID:          model.NumericID(1),
		Name:        "National Alliance on Mental Illness (NAMI)",
		Type:        []model.ServiceTag{model.TagTrauma, model.TagVictims},
		Location:    "Nationwide",
		Description: "Free mental health support, education, and advocacy. Specialized trauma programs for violence survivors and families.",
		Phone:       "1-800-950-NAMI (6264)",
		Website:     "https://www.nami.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(2),
		Name:        "SAMHSA National Helpline",
		Type:        []model.ServiceTag{model.TagTrauma, model.TagVictims},
		Location:    "Nationwide",
		Description: "Free, confidential, 24/7 treatment referral and information service for mental health and substance abuse.",
		Phone:       "1-800-662-4357",
		Website:     "https://www.samhsa.gov/find-help/national-helpline",
		Verified:    true,
	},
	{
		ID:          model.NumericID(3),
		Name:        "Crisis Text Line",
		Type:        []model.ServiceTag{model.TagTrauma, model.TagVictims, model.TagYouth},
		Location:    "Nationwide",
		Description: "Free 24/7 crisis counseling via text message. Trained counselors provide support for trauma, violence, and mental health crises.",
		Phone:       "Text HOME to 741741",
		Website:     "https://www.crisistextline.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(4),
		Name:        "The Trauma Recovery Network",
		Type:        []model.ServiceTag{model.TagTrauma, model.TagVictims},
		Location:    "Nationwide",
		Description: "Specialized trauma therapy and support groups for survivors of violence, including gun violence and community trauma.",
		Phone:       "1-844-887-2862",
		Verified:    true,
	},
	{
		ID:          model.NumericID(5),
		Name:        "PsychHub Trauma Services",
		Type:        []model.ServiceTag{model.TagTrauma, model.TagVictims},
		Location:    "Nationwide",
		Description: "Online trauma-informed mental health resources and therapy referrals for violence survivors.",
		Phone:       "1-877-727-4343",
		Verified:    true,
	},
	{
		ID:          model.NumericID(6),
		Name:        "National Center for Victims of Crime",
		Type:        []model.ServiceTag{model.TagVictims, model.TagLegal},
		Location:    "Nationwide",
		Description: "Comprehensive support for crime victims including advocacy, counseling referrals, and rights information.",
		Phone:       "1-855-4-VICTIM (1-855-484-2846)",
		Website:     "https://victimsofcrime.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(7),
		Name:        "Office for Victims of Crime (OVC)",
		Type:        []model.ServiceTag{model.TagVictims, model.TagLegal},
		Location:    "Nationwide",
		Description: "Federal resource center providing victim compensation, crisis response, and support services nationwide.",
		Phone:       "1-800-851-3420",
		Website:     "https://ovc.ojp.gov",
		Verified:    true,
	},
	{
		ID:          model.NumericID(8),
		Name:        "National Organization for Victim Assistance (NOVA)",
		Type:        []model.ServiceTag{model.TagVictims, model.TagTrauma},
		Location:    "Nationwide",
		Description: "24/7 crisis intervention, victim advocacy, and referrals to local support services.",
		Phone:       "1-800-879-6682",
		Verified:    true,
	},
	{
		ID:          model.NumericID(9),
		Name:        "Mothers Against Violence",
		Type:        []model.ServiceTag{model.TagVictims, model.TagViolencePrevention},
		Location:    "Nationwide",
		Description: "Support network for families who have lost loved ones to gun violence. Grief counseling and advocacy.",
		Phone:       "1-888-NO-VIOLENCE",
		Verified:    true,
	},
	{
		ID:          model.NumericID(10),
		Name:        "National Domestic Violence Hotline",
		Type:        []model.ServiceTag{model.TagHousing, model.TagVictims},
		Location:    "Nationwide",
		Description: "Emergency shelter referrals, safety planning, and housing assistance for those fleeing violence.",
		Phone:       "1-800-799-7233",
		Website:     "https://www.thehotline.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(11),
		Name:        "HUD Housing Counseling",
		Type:        []model.ServiceTag{model.TagHousing},
		Location:    "Nationwide",
		Description: "Free housing counseling services including emergency housing, transitional housing, and rental assistance.",
		Phone:       "1-800-569-4287",
		Website:     "https://www.hud.gov/counseling",
		Verified:    true,
	},
	{
		ID:          model.NumericID(12),
		Name:        "National Alliance to End Homelessness",
		Type:        []model.ServiceTag{model.TagHousing},
		Location:    "Nationwide",
		Description: "Emergency shelter placement, transitional housing programs, and permanent housing solutions.",
		Phone:       "1-202-638-1526",
		Website:     "https://endhomelessness.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(13),
		Name:        "Salvation Army Emergency Services",
		Type:        []model.ServiceTag{model.TagHousing, model.TagVictims},
		Location:    "Nationwide",
		Description: "Emergency housing, temporary shelter, and transitional housing programs for violence survivors.",
		Phone:       "1-800-SAL-ARMY (1-800-725-2769)",
		Verified:    true,
	},
	{
		ID:          model.NumericID(14),
		Name:        "Legal Services Corporation (LSC)",
		Type:        []model.ServiceTag{model.TagLegal},
		Location:    "Nationwide",
		Description: "Free civil legal assistance nationwide. Helps connect low-income individuals with local legal aid providers.",
		Phone:       "1-202-295-1500",
		Website:     "https://www.lsc.gov",
		Verified:    true,
	},
	{
		ID:          model.NumericID(15),
		Name:        "American Bar Association Pro Bono Center",
		Type:        []model.ServiceTag{model.TagLegal, model.TagVictims},
		Location:    "Nationwide",
		Description: "Free legal assistance for crime victims including protective orders, victim compensation, and rights advocacy.",
		Phone:       "1-800-285-2221",
		Verified:    true,
	},
	{
		ID:          model.NumericID(16),
		Name:        "National Crime Victim Law Institute",
		Type:        []model.ServiceTag{model.TagLegal, model.TagVictims},
		Location:    "Nationwide",
		Description: "Legal advocacy and representation for crime victims' rights in court proceedings.",
		Phone:       "1-503-768-6819",
		Verified:    true,
	},
	{
		ID:          model.NumericID(17),
		Name:        "Victim Rights Law Center",
		Type:        []model.ServiceTag{model.TagLegal, model.TagVictims},
		Location:    "Nationwide",
		Description: "Free legal services for crime victims including court advocacy and civil legal representation.",
		Phone:       "1-866-372-1001",
		Verified:    true,
	},
	{
		ID:          model.NumericID(18),
		Name:        "National Institute for Violence Prevention",
		Type:        []model.ServiceTag{model.TagViolencePrevention, model.TagYouth},
		Location:    "Nationwide",
		Description: "Community violence intervention programs, conflict mediation, and prevention education.",
		Phone:       "1-877-STOP-GUN",
		Verified:    true,
	},
	{
		ID:          model.NumericID(19),
		Name:        "Cure Violence",
		Type:        []model.ServiceTag{model.TagViolencePrevention, model.TagYouth},
		Location:    "Multiple States",
		Description: "Evidence-based violence interruption programs treating violence as a public health issue.",
		Phone:       "1-312-996-8775",
		Website:     "https://cvg.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(20),
		Name:        "Communities Overcoming Violence",
		Type:        []model.ServiceTag{model.TagViolencePrevention},
		Location:    "Nationwide",
		Description: "Community-led violence prevention, street outreach, and conflict resolution services.",
		Phone:       "1-866-968-7233",
		Verified:    true,
	},
	{
		ID:          model.NumericID(21),
		Name:        "National Network for Safe Communities",
		Type:        []model.ServiceTag{model.TagViolencePrevention, model.TagYouth},
		Location:    "Nationwide",
		Description: "Proven violence reduction strategies and community intervention programs.",
		Phone:       "1-212-237-8456",
		Verified:    true,
	},
	{
		ID:          model.NumericID(22),
		Name:        "The Trevor Project",
		Type:        []model.ServiceTag{model.TagYouth, model.TagTrauma},
		Location:    "Nationwide",
		Description: "24/7 crisis intervention and suicide prevention for LGBTQ+ youth affected by violence or trauma.",
		Phone:       "1-866-488-7386",
		Website:     "https://www.thetrevorproject.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(23),
		Name:        "Boys & Girls Clubs of America",
		Type:        []model.ServiceTag{model.TagYouth, model.TagViolencePrevention},
		Location:    "Nationwide",
		Description: "Safe spaces, mentorship, and support programs for youth in high-risk communities.",
		Phone:       "1-800-854-2582",
		Website:     "https://www.bgca.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(24),
		Name:        "National Runaway Safeline",
		Type:        []model.ServiceTag{model.TagYouth, model.TagHousing},
		Location:    "Nationwide",
		Description: "24/7 crisis support, shelter referrals, and safety planning for youth fleeing violence.",
		Phone:       "1-800-786-2929",
		Website:     "https://www.1800runaway.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(25),
		Name:        "YouthBuild USA",
		Type:        []model.ServiceTag{model.TagYouth, model.TagViolencePrevention},
		Location:    "Nationwide",
		Description: "Education, job training, and counseling programs for young people in underserved communities.",
		Phone:       "1-617-623-9900",
		Verified:    true,
	},
	{
		ID:          model.NumericID(26),
		Name:        "Youth Villages",
		Type:        []model.ServiceTag{model.TagYouth, model.TagTrauma},
		Location:    "Multiple States",
		Description: "Mental health services, crisis intervention, and family support for at-risk youth.",
		Phone:       "1-800-288-9968",
		Website:     "https://youthvillages.org",
		Verified:    true,
	},
	{
		ID:          model.NumericID(27),
		Name:        "SNUG Street Outreach",
		Type:        []model.ServiceTag{model.TagViolencePrevention, model.TagYouth},
		Location:    "New York State",
		Description: "Street outreach program providing conflict mediation and violence interruption services.",
		Phone:       "(518) 474-2121",
		Verified:    true,
	},
	{
		ID:          model.NumericID(28),
		Name:        "Trauma Recovery Center",
		Type:        []model.ServiceTag{model.TagTrauma, model.TagVictims},
		Location:    "Brooklyn, NY",
		Description: "Free trauma-focused therapy for gun violence survivors and family members.",
		Phone:       "(718) 834-7341",
		Verified:    true,
	},
	{
		ID:          model.NumericID(29),
		Name:        "Safe Haven Housing",
		Type:        []model.ServiceTag{model.TagHousing, model.TagVictims},
		Location:    "Queens, NY",
		Description: "Emergency and transitional housing for those displaced by community violence.",
		Phone:       "(718) 291-4000",
		Verified:    true,
	},
	{
		ID:          model.NumericID(30),
		Name:        "Chicago CRED",
		Type:        []model.ServiceTag{model.TagViolencePrevention, model.TagYouth},
		Location:    "Chicago, IL",
		Description: "Violence reduction through employment, education, and mentorship for high-risk youth.",
		Phone:       "(312) 374-9378",
		Website:     "https://www.chicagocred.org",
		Verified:    true,
	},
}
