package chatbot

// Rule maps a set of trigger keywords to a canned reply. Rules are
// evaluated in order; the first rule with any keyword contained in the
// message wins.
type Rule struct {
	Keywords []string `json:"keywords"`
	Reply    string   `json:"reply"`
}

const fallbackReply = "Sorry, I don't know about that yet."

var defaultRules = []Rule{
	// Greetings
	{Keywords: []string{"hi", "hii", "hiii", "hello"}, Reply: "Hi! How can I help you today?"},
	{Keywords: []string{"how are you"}, Reply: "I am a bot, but I am doing great! 😊"},
	{Keywords: []string{"what is your name"}, Reply: "I am your helper bot."},

	// Small talk
	{Keywords: []string{"yes", "hmm"}, Reply: "How can i help you?"},
	{Keywords: []string{"no", "never"}, Reply: "If you need help ask me I am happy to help you 😊"},
	{Keywords: []string{"bye", "by", "goodbye", "see you"}, Reply: "Goodbye! Have a great day 😊"},
	{Keywords: []string{"bad", "stupid", "idiot", "hate", "angry", "mad", "nonsense"}, Reply: "I'm sorry if you're upset. 😔 I'll try to do better. Can I help you with something else?"},

	// Booking & cancel
	{Keywords: []string{"how to book room", "book room"}, Reply: "To book a room, go to the home page, choose your room, and click 'Book'."},
	{Keywords: []string{"how to cancel room", "cancel booking", "cancel room"}, Reply: "Go to your dashboard and click 'Cancel' next to the booked room."},
	{Keywords: []string{"how to modify booking", "change booking"}, Reply: "Currently, you can cancel your booking and make a new one with updated details."},
	{Keywords: []string{"check availability", "available rooms"}, Reply: "Go to the home page and use filters to check available rooms."},
	{Keywords: []string{"room price", "how much is room", "cost of room"}, Reply: "Room prices vary depending on the type. Please check the home page for details."},
	{Keywords: []string{"offers", "discount", "deals"}, Reply: "We provide seasonal discounts. Please check the offers section on the home page."},

	// Login & register
	{Keywords: []string{"how to login", "login"}, Reply: "Go to the login page and enter your username and password."},
	{Keywords: []string{"how to register", "register"}, Reply: "Go to the register page and fill all fields to create an account."},
	{Keywords: []string{"forgot password", "reset password"}, Reply: "Contact the admin in case of 'Forgot Password' or to reset your password."},

	// Dashboard & profile
	{Keywords: []string{"how to check dashboard", "dashboard"}, Reply: "Click on Dashboard in the navbar to see your bookings and stats."},
	{Keywords: []string{"edit profile", "update details"}, Reply: "Go to your profile page where you can edit your name, email, and mobile number."},

	// Payments
	{Keywords: []string{"how to pay", "payment methods", "payment options", "make payment"}, Reply: "We accept cash."},
	{Keywords: []string{"refund policy", "refund"}, Reply: "No Refunds."},

	// Check-in / check-out
	{Keywords: []string{"check in time", "checkin time"}, Reply: "Our standard check-in time is 12:00 PM."},
	{Keywords: []string{"check out time", "checkout time"}, Reply: "Our standard check-out time is 11:00 AM."},
	{Keywords: []string{"early check in", "late check out"}, Reply: "Early check-in and late check-out are subject to availability. Please contact the admin."},

	// Contact / help
	{Keywords: []string{"how to contact", "contact"}, Reply: "You can contact the admin via email at admin@pgstay.local."},
	{Keywords: []string{"help", "support"}, Reply: "Sure! Tell me what you need help with: booking, login, payment, or profile?"},

	// Facilities & services
	{Keywords: []string{"location", "address", "where is hotel"}, Reply: "Our hotel is located at City Center near MG Road, New Delhi."},
	{Keywords: []string{"services", "facilities"}, Reply: "We offer free WiFi, breakfast, parking, laundry, spa, gym, and a swimming pool."},
	{Keywords: []string{"restaurant", "food"}, Reply: "Yes, we have an in-house restaurant serving multi-cuisine dishes."},
	{Keywords: []string{"gym", "swimming pool"}, Reply: "Yes, our hotel has a fitness gym and a rooftop swimming pool for guests."},
	{Keywords: []string{"wifi", "internet"}, Reply: "Yes, free high-speed WiFi is available in all rooms and common areas."},
	{Keywords: []string{"parking"}, Reply: "Yes, we provide free parking for guests."},
}
