package models

// Fallback content rendered when the store has no row or cannot be reached.

func DefaultClinicSettings() ClinicSettings {
	return ClinicSettings{
		Name:            "Al Hayat Medical",
		LogoInitials:    "AH",
		Description:     "Providing exceptional healthcare services with compassion and excellence since 2009.",
		Phone:           "+123 456 7890",
		PhoneSecondary:  "+123 456 7891",
		Email:           "info@alhayatmedical.com",
		EmailSecondary:  "appointments@alhayatmedical.com",
		Address:         "123 Medical Street",
		AddressLine2:    "Healthcare City, HC 12345",
		WeekdayHours:    "Mon - Fri: 8:00 AM - 8:00 PM",
		SaturdayHours:   "Saturday: 9:00 AM - 5:00 PM",
		SundayHours:     "Sunday: 9:00 AM - 5:00 PM",
		WeekendHours:    "Sat - Sun: 9:00 AM - 5:00 PM",
		EmergencyNumber: "+123 456 7899",
		EmergencyText:   "24/7 Emergency Services Available",
		CopyrightText:   "© Al Hayat Medical Complex. All rights reserved.",
	}
}

func DefaultHomePageSettings() HomePageSettings {
	return HomePageSettings{
		HeroTitle:           "Your Health,",
		HeroSubtitle:        "Our Priority",
		HeroDescription:     "Experience comprehensive healthcare services delivered with compassion, expertise, and cutting-edge medical technology.",
		AboutTitle:          "Trusted Healthcare Partner",
		AboutDescription1:   "Al Hayat Medical Complex has been serving our community for over 15 years, providing comprehensive healthcare services with a commitment to excellence and compassion.",
		AboutDescription2:   "Our state-of-the-art facility combines advanced medical technology with the expertise of our board-certified physicians to deliver exceptional patient care across all specializations.",
		CTATitle:            "Ready to Take Control of Your Health?",
		CTADescription:      "Schedule an appointment with our experienced medical professionals today",
		StatDoctors:         "50+",
		StatSpecializations: "15+",
		StatPatients:        "10K+",
		StatEmergency:       "24/7",
		Phone:               "+123 456 7890",
	}
}

func DefaultHomeFeatures() []HomeFeature {
	return []HomeFeature{
		{IconName: "award", Title: "Accredited Excellence", Description: "Internationally accredited facility meeting the highest standards of medical care and patient safety.", IsActive: true, DisplayOrder: 1},
		{IconName: "users", Title: "Expert Medical Team", Description: "Board-certified physicians with extensive experience across multiple medical specializations.", IsActive: true, DisplayOrder: 2},
		{IconName: "shield", Title: "Advanced Technology", Description: "State-of-the-art medical equipment and cutting-edge diagnostic capabilities.", IsActive: true, DisplayOrder: 3},
		{IconName: "heart", Title: "Patient-Centered Care", Description: "Personalized treatment plans focused on your individual health needs and wellbeing.", IsActive: true, DisplayOrder: 4},
	}
}

func DefaultHomeSpecializations() []HomeSpecialization {
	return []HomeSpecialization{
		{IconName: "stethoscope", Name: "Cardiology", Count: "8 Specialists", Color: "from-red-500 to-rose-600", IsActive: true, DisplayOrder: 1},
		{IconName: "building2", Name: "Orthopedics", Count: "6 Specialists", Color: "from-green-500 to-emerald-600", IsActive: true, DisplayOrder: 2},
		{IconName: "microscope", Name: "Laboratory", Count: "Advanced Diagnostics", Color: "from-purple-500 to-violet-600", IsActive: true, DisplayOrder: 3},
		{IconName: "ambulance", Name: "Emergency", Count: "24/7 Service", Color: "from-orange-500 to-amber-600", IsActive: true, DisplayOrder: 4},
	}
}

// DefaultSpecializationColor is applied to new specialization drafts.
const DefaultSpecializationColor = "from-green-500 to-emerald-600"

func DefaultServices() []Service {
	return []Service{
		{IconName: "stethoscope", Title: "Cardiology", Description: "Comprehensive cardiovascular care including diagnosis, treatment, and prevention of heart diseases.", Features: StringList{"ECG & Echocardiography", "Cardiac Catheterization", "Heart Surgery", "Cardiac Rehabilitation"}, IsActive: true, DisplayOrder: 1},
		{IconName: "baby", Title: "Pediatrics", Description: "Specialized healthcare for infants, children, and adolescents with experienced pediatricians.", Features: StringList{"Newborn Care", "Vaccinations", "Growth Monitoring", "Pediatric Surgery"}, IsActive: true, DisplayOrder: 2},
		{IconName: "bone", Title: "Orthopedics", Description: "Treatment of musculoskeletal conditions including bones, joints, ligaments, and tendons.", Features: StringList{"Joint Replacement", "Sports Medicine", "Fracture Care", "Spine Surgery"}, IsActive: true, DisplayOrder: 3},
		{IconName: "brain", Title: "Neurology", Description: "Expert care for disorders of the nervous system including brain and spinal cord conditions.", Features: StringList{"Stroke Care", "Epilepsy Treatment", "Neurosurgery", "Pain Management"}, IsActive: true, DisplayOrder: 4},
		{IconName: "eye", Title: "Ophthalmology", Description: "Complete eye care services including diagnosis and treatment of eye diseases and vision problems.", Features: StringList{"Cataract Surgery", "LASIK", "Retina Care", "Glaucoma Treatment"}, IsActive: true, DisplayOrder: 5},
		{IconName: "test-tube", Title: "Laboratory Services", Description: "State-of-the-art diagnostic laboratory with accurate and timely test results.", Features: StringList{"Blood Tests", "Pathology", "Microbiology", "Genetic Testing"}, IsActive: true, DisplayOrder: 6},
	}
}

func DefaultPharmacySettings() PharmacySettings {
	return PharmacySettings{
		HeroTitle:       "Pharmacy & Medicine",
		HeroDescription: "Your trusted pharmacy providing quality medications and healthcare products with professional pharmaceutical care available 24/7.",
		Phone:           "+123 456 7890",
		Email:           "pharmacy@alhayatmedical.com",
	}
}

func DefaultPharmacyFeatures() []PharmacyFeature {
	return []PharmacyFeature{
		{IconName: "clock", Title: "Open 24/7", Description: "Our pharmacy is open round the clock for your convenience", IsActive: true, DisplayOrder: 1},
		{IconName: "shield", Title: "Quality Assured", Description: "All medications sourced from certified manufacturers", IsActive: true, DisplayOrder: 2},
		{IconName: "truck", Title: "Home Delivery", Description: "Free delivery for orders above minimum value", IsActive: true, DisplayOrder: 3},
		{IconName: "check-circle", Title: "Expert Consultation", Description: "Qualified pharmacists for medication counseling", IsActive: true, DisplayOrder: 4},
	}
}

func DefaultMedicineCategories() []MedicineCategory {
	return []MedicineCategory{
		{IconName: "pill", Name: "Prescription Medicines", Description: "Wide range of prescribed medications available with doctor's prescription", IsActive: true, DisplayOrder: 1},
		{IconName: "shopping-cart", Name: "Over-the-Counter", Description: "Common medicines for everyday health needs without prescription", IsActive: true, DisplayOrder: 2},
		{IconName: "check-circle", Name: "Vitamins & Supplements", Description: "Quality vitamins, minerals, and dietary supplements", IsActive: true, DisplayOrder: 3},
		{IconName: "shield", Name: "First Aid & Care", Description: "Essential first aid supplies and personal care products", IsActive: true, DisplayOrder: 4},
	}
}

func DefaultPopularMedicines() []PopularMedicine {
	return []PopularMedicine{
		{CategoryName: "Pain Relief", Items: StringList{"Paracetamol", "Ibuprofen", "Aspirin", "Naproxen"}, IsActive: true, DisplayOrder: 1},
		{CategoryName: "Cold & Flu", Items: StringList{"Antihistamines", "Decongestants", "Cough Syrups", "Throat Lozenges"}, IsActive: true, DisplayOrder: 2},
		{CategoryName: "Digestive Health", Items: StringList{"Antacids", "Probiotics", "Anti-diarrheal", "Laxatives"}, IsActive: true, DisplayOrder: 3},
		{CategoryName: "Vitamins", Items: StringList{"Multivitamins", "Vitamin D", "Vitamin C", "B-Complex"}, IsActive: true, DisplayOrder: 4},
		{CategoryName: "Heart Health", Items: StringList{"Blood Pressure", "Cholesterol", "Anticoagulants", "Beta Blockers"}, IsActive: true, DisplayOrder: 5},
		{CategoryName: "Diabetes Care", Items: StringList{"Insulin", "Metformin", "Glucose Monitors", "Test Strips"}, IsActive: true, DisplayOrder: 6},
	}
}

func DefaultPharmacyServices() []PharmacyService {
	return []PharmacyService{
		{IconName: "pill", Title: "Prescription Filling", Description: "Quick and accurate prescription filling with quality medications", IsActive: true, DisplayOrder: 1},
		{IconName: "users", Title: "Medication Counseling", Description: "Professional advice on proper medication usage and interactions", IsActive: true, DisplayOrder: 2},
		{IconName: "truck", Title: "Home Delivery", Description: "Convenient home delivery service for your medications", IsActive: true, DisplayOrder: 3},
		{IconName: "activity", Title: "Health Screening", Description: "Blood pressure, glucose monitoring, and basic health checks", IsActive: true, DisplayOrder: 4},
	}
}

// ContactDepartments are the options offered by the contact form's service field.
var ContactDepartments = []string{
	"General Consultation",
	"Cardiology",
	"Pediatrics",
	"Orthopedics",
	"Neurology",
	"Ophthalmology",
	"Pharmacy",
	"Emergency Services",
}

// Blog draft defaults.
const (
	DefaultBlogCategory = "General Health"
	DefaultBlogReadTime = "5 min read"
)
