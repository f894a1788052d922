package pages

import (
	"context"
	"fmt"
	"strconv"

	"grocer/cli/internal/backend"
	"grocer/cli/internal/router"

	"github.com/pterm/pterm"
)

// Dashboard lists the user's lists.
func (p *Pages) Dashboard(ctx context.Context, req router.Request) (router.Result, error) {
	lists, err := p.API.GetLists(ctx)
	if err != nil {
		return router.Result{}, err
	}
	heading := "Your lists"
	if u := p.Auth.State().User; u != nil {
		heading += mutedStyle.Sprint(" · " + u.DisplayName())
	}
	p.println(titleStyle.Sprint(heading))

	if len(lists) == 0 {
		p.println("No lists yet. Create one with " + hintStyle.Sprint("grocer lists create <name>") + ".")
		return router.Result{}, nil
	}
	p.println(RenderLists(lists))
	return router.Result{}, nil
}

// ListDetail shows one list and its items.
func (p *Pages) ListDetail(ctx context.Context, req router.Request) (router.Result, error) {
	l, err := p.API.GetList(ctx, req.Params["id"])
	if err != nil {
		return router.Result{}, err
	}
	p.println(RenderList(l))
	return router.Result{}, nil
}

// Share joins a list from a share link. The route is exempt from the guard, so
// the page itself checks for a session cookie instead of redirecting.
func (p *Pages) Share(ctx context.Context, req router.Request) (router.Result, error) {
	id := req.Params["id"]
	if !p.hasCookie() {
		p.println(pterm.Info.Sprint("Someone shared a list with you."))
		p.println("Sign in with " + hintStyle.Sprint("grocer login") +
			", then open " + hintStyle.Sprint("/lists/share/"+id) + " again to join it.")
		return router.Result{}, nil
	}
	l, err := p.API.ShareList(ctx, id)
	if err != nil {
		return router.Result{}, err
	}
	p.println(pterm.Success.Sprint("Joined " + l.Name))
	p.println(RenderList(l))
	return router.Result{}, nil
}

// RenderLists draws the dashboard table.
func RenderLists(lists []backend.List) string {
	data := pterm.TableData{{"Name", "Items", "Left", "Shared", "ID"}}
	for _, l := range lists {
		data = append(data, []string{
			l.Name,
			strconv.Itoa(len(l.Items)),
			strconv.Itoa(l.Remaining()),
			strconv.Itoa(len(l.SharedWith)),
			l.ID,
		})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Sprint(lists)
	}
	return s
}

// RenderList draws one list with its items, addressed by index.
func RenderList(l *backend.List) string {
	body := labelStyle.Sprint("ID: ") + l.ID
	if l.Description != "" {
		body = l.Description + "\n" + body
	}
	if n := len(l.SharedWith); n > 0 {
		body += "\n" + labelStyle.Sprint("Shared with: ") + strconv.Itoa(n)
	}
	out := pterm.DefaultBox.WithTitle(titleStyle.Sprint(l.Name)).WithPadding(1).Sprint(body) + "\n"

	if len(l.Items) == 0 {
		return out + mutedStyle.Sprint("No items yet.")
	}
	data := pterm.TableData{{"#", "", "Item", "Qty", "Details"}}
	for i, it := range l.Items {
		mark := "[ ]"
		if it.Checked {
			mark = "[x]"
		}
		qty := ""
		if it.Quantity > 0 {
			qty = strconv.Itoa(it.Quantity)
		}
		data = append(data, []string{strconv.Itoa(i), mark, it.Name, qty, it.Details})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return out
	}
	return out + s + "\n" + mutedStyle.Sprintf("%d of %d left", l.Remaining(), len(l.Items))
}
