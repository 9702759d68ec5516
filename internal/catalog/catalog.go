// Package catalog 提供靜態且唯讀的服務目錄
package catalog

import "nsleadprovider/internal/model"

var offerings = []model.ServiceOffering{
	{
		ID:          1,
		Title:       "Data Appending Enrichment",
		Description: "You Have a Lead List need Enrich with data Or contact person Email. We can help you to Enrich your Data. If You have an Old lead list And need to Update data then we can replace it with Update data. We can also Provide Missing Data From Various Sources and Valid Sources. We charge per row only 15 cents.",
		Image:       "/images/services/service-1.png",
	},
	{
		ID:          2,
		Title:       "Email Appending Enrichment",
		Description: "You Have a Lead List that needs Enrich with the Owner or Decision makers Name and Email. We Provide any Decision makers contact Details.",
		Image:       "/images/services/service-2.png",
	},
	{
		ID:          3,
		Title:       "Prospect List Building",
		Description: "We Have Some Targeted Companies. We are looking for their Decision makers Contact Details. We are here to help you to reach your goal. I Can Provide Linkedin Lead Generation Data.",
		Image:       "/images/services/service-3.png",
	},
	{
		ID:          4,
		Title:       "Any Industry Leads",
		Description: "Here we Ready to provide any industry data. You just tell us about your targeted Industry Locations and Title/Role. You will get 100% valid data. We provide 100% Data accuracy Guarantee with 99% Emails Delivery Guarantee.",
		Image:       "/images/services/service-4.png",
	},
	{
		ID:          5,
		Title:       "Email Finding",
		Description: "Do You Have a List? And Looking For their Valid Emails. Here We can provide 99% Delivery able Emails. Just Share your list with us. We provide valid emails for only 15 cents.",
		Image:       "/images/services/service-5.png",
	},
	{
		ID:          6,
		Title:       "Direct Number Finding",
		Description: "We are looking For Contact Person Direct Dials Number and cell phone number/Mobile Number. Here We provide any contact person direct dials number and cell phone number at only 15 cents.",
		Image:       "/images/services/service-6.png",
	},
	{
		ID:          7,
		Title:       "Skip Tracing",
		Description: "You only have a Person name and their Mailing address or home address. You are looking for their Cell/Direct phone number and Email. We can provide those contact details.",
		Image:       "/images/services/service-7.png",
	},
}

var byID = func() map[int]model.ServiceOffering {
	m := make(map[int]model.ServiceOffering, len(offerings))
	for _, o := range offerings {
		m[o.ID] = o
	}
	return m
}()

// All 回傳目錄副本，呼叫端修改不影響目錄本身
func All() []model.ServiceOffering {
	out := make([]model.ServiceOffering, len(offerings))
	copy(out, offerings)
	return out
}

func Lookup(id int) (model.ServiceOffering, bool) {
	o, ok := byID[id]
	return o, ok
}

// Resolve 依序把 id 對應到目錄項目，未知 id 直接略過
func Resolve(ids []int) []model.ServiceOffering {
	out := make([]model.ServiceOffering, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			out = append(out, o)
		}
	}
	return out
}
