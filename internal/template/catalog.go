// Package template holds the static form template catalog: named question
// sets grouped by category, used for one-click form creation. Pure lookup,
// never mutated.
package template

import "github.com/thanhvu/formforge/internal/model"

type Question struct {
	Text        string
	Placeholder string
	Type        model.QuestionType
	Options     []string
}

type Template struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
	Questions   []Question
}

// All returns the catalog in its fixed display order.
func All() []Template {
	return catalog
}

// Find looks a template up by id.
func Find(id string) (Template, bool) {
	for _, tpl := range catalog {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}

// Categories returns the catalog grouped by category, preserving the
// catalog order within each group.
func Categories() map[string][]Template {
	grouped := make(map[string][]Template)
	for _, tpl := range catalog {
		grouped[tpl.Category] = append(grouped[tpl.Category], tpl)
	}
	return grouped
}

var catalog = []Template{
	{
		ID:          "contact",
		Name:        "Contact Form",
		Description: "Collect contact information from visitors",
		Icon:        "📞",
		Category:    "Business",
		Questions: []Question{
			{Text: "Full Name", Placeholder: "Enter your full name", Type: model.ShortResponse},
			{Text: "Email Address", Placeholder: "your.email@example.com", Type: model.ShortResponse},
			{Text: "Phone Number", Placeholder: "+1 (555) 123-4567", Type: model.ShortResponse},
			{Text: "Subject", Placeholder: "What's this about?", Type: model.ShortResponse},
			{Text: "Message", Placeholder: "Tell us how we can help you...", Type: model.ShortResponse},
			{Text: "How did you hear about us?", Type: model.SelectOneOption,
				Options: []string{"Google Search", "Social Media", "Friend/Family", "Advertisement", "Other"}},
		},
	},
	{
		ID:          "ticketing",
		Name:        "Ticketing Form",
		Description: "Form to generate support tickets",
		Icon:        "🎫",
		Category:    "Support",
		Questions: []Question{
			{Text: "Seat Number", Placeholder: "Enter your seat number", Type: model.ShortResponse},
			{Text: "Name", Placeholder: "Enter your name", Type: model.ShortResponse},
			{Text: "Email", Placeholder: "your.email@example.com", Type: model.ShortResponse},
			{Text: "Subject", Placeholder: "Subject of your ticket", Type: model.ShortResponse},
			{Text: "Description", Placeholder: "Describe your issue or request", Type: model.ShortResponse},
		},
	},
	{
		ID:          "event-registration",
		Name:        "Event Registration",
		Description: "Register attendees for your event",
		Icon:        "🎉",
		Category:    "Events",
		Questions: []Question{
			{Text: "Full Name", Placeholder: "Enter your full name", Type: model.ShortResponse},
			{Text: "Email Address", Placeholder: "your.email@example.com", Type: model.ShortResponse},
			{Text: "Phone Number", Placeholder: "+1 (555) 123-4567", Type: model.ShortResponse},
			{Text: "Organization/Company", Placeholder: "Your organization name", Type: model.ShortResponse},
			{Text: "Which sessions will you attend?", Type: model.SelectMultipleOptions,
				Options: []string{"Morning Keynote", "Technical Workshop", "Networking Lunch", "Panel Discussion", "Closing Ceremony"}},
			{Text: "Dietary Restrictions", Type: model.SelectOneOption,
				Options: []string{"None", "Vegetarian", "Vegan", "Gluten-Free", "Other"}},
		},
	},
	{
		ID:          "customer-feedback",
		Name:        "Customer Feedback",
		Description: "Gather feedback about your product or service",
		Icon:        "⭐",
		Category:    "Business",
		Questions: []Question{
			{Text: "How would you rate your overall experience?", Type: model.SelectOneOption,
				Options: []string{"Excellent", "Good", "Average", "Poor", "Very Poor"}},
			{Text: "Which aspects did you like?", Type: model.SelectMultipleOptions,
				Options: []string{"Product Quality", "Customer Service", "Pricing", "Delivery Speed", "Website Experience"}},
			{Text: "Would you recommend us to others?", Type: model.SelectOneOption,
				Options: []string{"Definitely", "Probably", "Not Sure", "Probably Not", "Definitely Not"}},
			{Text: "What could we improve?", Placeholder: "Share your suggestions...", Type: model.ShortResponse},
		},
	},
	{
		ID:          "rsvp",
		Name:        "RSVP Form",
		Description: "Collect attendance confirmations",
		Icon:        "💌",
		Category:    "Events",
		Questions: []Question{
			{Text: "Your Name", Placeholder: "Enter your full name", Type: model.ShortResponse},
			{Text: "Will you attend?", Type: model.SelectOneOption,
				Options: []string{"Yes, I'll be there", "No, I can't make it", "Maybe"}},
			{Text: "Number of Guests", Placeholder: "How many people are you bringing?", Type: model.ShortResponse},
			{Text: "Any message for the host?", Placeholder: "Optional message...", Type: model.ShortResponse},
		},
	},
	{
		ID:          "product-survey",
		Name:        "Product Survey",
		Description: "Learn what customers think about a product",
		Icon:        "📦",
		Category:    "Research",
		Questions: []Question{
			{Text: "How often do you use the product?", Type: model.SelectOneOption,
				Options: []string{"Daily", "Weekly", "Monthly", "Rarely", "Never"}},
			{Text: "Which features do you use?", Type: model.SelectMultipleOptions,
				Options: []string{"Dashboard", "Reports", "Integrations", "Mobile App", "API"}},
			{Text: "What is the main problem the product solves for you?",
				Placeholder: "Describe in your own words...", Type: model.ShortResponse},
			{Text: "How likely are you to keep using it?", Type: model.SelectOneOption,
				Options: []string{"Very Likely", "Likely", "Neutral", "Unlikely", "Very Unlikely"}},
		},
	},
}
