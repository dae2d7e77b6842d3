package service

import "strings"

// Assistant is the scripted chat behind the merchant ai-assistant page.
// Replies are canned and chosen by keyword; there is no model behind it.
type Assistant struct {
	rules    []assistantRule
	fallback string
}

type assistantRule struct {
	keywords []string
	reply    string
}

func NewAssistant() *Assistant {
	return &Assistant{
		rules: []assistantRule{
			{
				keywords: []string{"order", "shipment", "deliver"},
				reply:    "You have 1 pending order (ORD-1042) and 1 order in transit. Delivered orders this week: 3.",
			},
			{
				keywords: []string{"stock", "inventory", "restock"},
				reply:    "Two products are low on stock: Desk Lamp Pro (3 left) and Wireless Earbuds (6 left). Consider restocking soon.",
			},
			{
				keywords: []string{"revenue", "sales", "earning"},
				reply:    "Your 30-day revenue is $18,452, up 4.7% on the previous period. Average order value is $86.22.",
			},
			{
				keywords: []string{"customer", "review"},
				reply:    "You have 3 new product reviews this week. Priya Sharma is your top customer by lifetime value.",
			},
			{
				keywords: []string{"help", "what can you"},
				reply:    "I can summarise your orders, inventory levels, sales performance and customer activity.",
			},
		},
		fallback: "Sorry, I did not catch that. Try asking about orders, inventory, sales or customers.",
	}
}

// Reply returns the canned response for the first rule whose keyword appears
// in prompt, or the fallback when nothing matches.
func (a *Assistant) Reply(prompt string) string {
	normalized := strings.ToLower(prompt)
	for _, rule := range a.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule.reply
			}
		}
	}
	return a.fallback
}
