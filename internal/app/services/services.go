package services

// Services defined in this package:
// - AuthService: registration, placeholder claim, login, profile management
// - DirectoryService: alumni directory listing
// - MentorshipService: request workflow and mentor recommendations
// - JobService / EventService / DonationService: postings and donations
// - NotificationService: per-user notifications
// - AdminService: user administration and bulk alumni import
