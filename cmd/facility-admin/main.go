package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fmsuite/facility-admin/internal/auth"
	"github.com/fmsuite/facility-admin/internal/config"
	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/reports"
	"github.com/fmsuite/facility-admin/internal/service"
	"github.com/fmsuite/facility-admin/internal/store"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: facility-admin <command> [flags]

Commands:
  seed       Load demo branches, vendors, work orders, bills and fuel logs
  summary    Print the dashboard summary
  score      Print vendor performance scorecards
  export     Export work orders, bills and scorecards (-format csv|xlsx)
  register   Create a user account (-username -email -password -role)
`)
	os.Exit(2)
}

func buildStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendMongo:
		client, err := store.ConnectMongo()
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.MongoDB).Collection("collections")
		return store.NewMongoStore(coll), nil
	case config.BackendFile:
		return store.NewFileStore(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg := config.Load()
	st, err := buildStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize store")
	}

	ctx := context.Background()
	var cmdErr error
	switch os.Args[1] {
	case "seed":
		cmdErr = runSeed(ctx, st)
	case "summary":
		cmdErr = runSummary(ctx, st)
	case "score":
		cmdErr = runScore(ctx, st)
	case "export":
		cmdErr = runExport(ctx, st, os.Args[2:])
	case "register":
		cmdErr = runRegister(ctx, st, os.Args[2:])
	default:
		usage()
	}
	if cmdErr != nil {
		log.WithError(cmdErr).Fatal("Command failed")
	}
}

func runSeed(ctx context.Context, st store.Store) error {
	now := time.Now()
	branches := service.NewBranchService(st)
	vendors := service.NewVendorService(st)
	vehicles := service.NewVehicleService(st)
	workOrders := service.NewWorkOrderService(st)
	bills := service.NewBillService(st)
	fuel := service.NewFuelService(st)

	branch, err := branches.Create(ctx, models.Branch{
		Name: "Accra Main", Code: "ACC-01", Region: "Greater Accra",
		Employees: 120, FloorArea: 2400, Status: models.BranchActive,
	})
	if err != nil {
		return err
	}
	if _, err := branches.Create(ctx, models.Branch{
		Name: "Kumasi", Code: "KSI-01", Region: "Ashanti",
		Employees: 45, FloorArea: 900, Status: models.BranchActive,
	}); err != nil {
		return err
	}

	hvac, err := vendors.Create(ctx, models.Vendor{
		Name: "Cool Air Ltd", Contact: "030-555-0101",
		Email: "service@coolair.example", Category: "HVAC",
	})
	if err != nil {
		return err
	}
	genVendor, err := vendors.Create(ctx, models.Vendor{
		Name: "PowerGen Services", Contact: "030-555-0188",
		Email: "ops@powergen.example", Category: "Generator",
	})
	if err != nil {
		return err
	}

	if _, err := vehicles.Create(ctx, models.Vehicle{
		Registration: "GR-2041-24", Make: "Toyota", Model: "Hilux", Year: 2023,
		BranchSite: branch.Name, AssignedTo: "Facilities", Status: "Active",
	}); err != nil {
		return err
	}

	// A spread of PPM and reactive orders so summary and score have
	// something to chew on: most closed on time, one breached, one open.
	type seedOrder struct {
		vendorID   string
		woType     string
		daysAgo    int
		dueInDays  int
		doneInDays int // relative to created; -1 leaves the order open
		cost       float64
	}
	for i, so := range []seedOrder{
		{hvac.ID, models.WorkOrderTypePPM, 40, 7, 5, 600},
		{hvac.ID, models.WorkOrderTypePPM, 20, 7, 6, 600},
		{hvac.ID, models.WorkOrderTypePPM, 10, 7, 9, 650},
		{hvac.ID, models.WorkOrderTypeReactive, 5, 2, 1, 300},
		{genVendor.ID, models.WorkOrderTypePPM, 15, 7, 4, 1200},
		{genVendor.ID, models.WorkOrderTypeReactive, 3, 2, -1, 450},
	} {
		created := now.AddDate(0, 0, -so.daysAgo)
		wo := models.WorkOrder{
			AssetID:       fmt.Sprintf("AST-%03d", i+1),
			VendorID:      so.vendorID,
			BranchSite:    branch.Name,
			Description:   fmt.Sprintf("Seeded %s order %d", so.woType, i+1),
			Status:        models.WorkOrderOpen,
			WorkOrderType: so.woType,
			CreatedDate:   created,
			DueDate:       created.AddDate(0, 0, so.dueInDays),
			EstimatedCost: so.cost,
		}
		saved, err := workOrders.Create(ctx, wo)
		if err != nil {
			return err
		}
		if so.doneInDays >= 0 {
			if _, err := workOrders.Close(ctx, saved.ID, created.AddDate(0, 0, so.doneInDays)); err != nil {
				return err
			}
		}
	}

	month := now.Format("2006-01")
	if _, err := bills.Create(ctx, models.UtilityElectricity, models.UtilityBill{
		Month: month, BranchSite: branch.Name, MeterNumber: "ECG-114477",
		BillAmount: 3250.40, ReceivedDate: now.AddDate(0, 0, -6), RecordedBy: "seed",
	}); err != nil {
		return err
	}
	if _, err := bills.Create(ctx, models.UtilityWater, models.UtilityBill{
		Month: month, BranchSite: branch.Name, MeterNumber: "GWC-8841",
		BillAmount: 780.00, ReceivedDate: now.AddDate(0, 0, -4), RecordedBy: "seed",
	}); err != nil {
		return err
	}

	lowLog, err := fuel.CreateLog(ctx, models.FuelLevelLog{
		BranchSite: branch.Name, GeneratorID: "GEN-01",
		RecordedFuelLevel: 500, MinimumRequiredLevel: 800,
		RecordedBy: "seed", RecordedDate: now,
	})
	if err != nil {
		return err
	}
	if _, err := fuel.CreateLog(ctx, models.FuelLevelLog{
		BranchSite: "Kumasi", GeneratorID: "GEN-02",
		RecordedFuelLevel: 950, MinimumRequiredLevel: 800,
		RecordedBy: "seed", RecordedDate: now,
	}); err != nil {
		return err
	}
	if lowLog.ReorderRequired {
		if _, err := fuel.CreateReorder(ctx, models.ReorderRequest{
			BranchSite: lowLog.BranchSite, GeneratorID: lowLog.GeneratorID,
			RequestedLiters: 1000, RequestedBy: "seed", RequestedDate: now,
		}); err != nil {
			return err
		}
	}

	log.Info("Seed data loaded")
	return nil
}

func runSummary(ctx context.Context, st store.Store) error {
	dash := service.NewDashboardService(st)
	summary, err := dash.Summary(ctx, time.Now())
	if err != nil {
		return err
	}

	fmt.Println("Facility Dashboard Summary")
	fmt.Printf("  Work orders:        %d total, %d open, %d closed\n",
		summary.TotalWorkOrders, summary.OpenWorkOrders, summary.ClosedWorkOrders)
	fmt.Printf("  SLA breached:       %d\n", summary.SLABreachedCount)
	fmt.Printf("  PPM compliance:     %.0f%%\n", summary.PPMComplianceRate*100)
	fmt.Printf("  This month:         %d orders (%+.1f%% vs last month)\n",
		summary.WorkOrdersThisMonth, summary.WorkOrderChangePct)
	fmt.Printf("  Cost this month:    %.2f (last month %.2f)\n",
		summary.CostThisMonth, summary.CostLastMonth)
	fmt.Printf("  Utility bills:      %.2f total, %d unpaid, %d need remediation\n",
		summary.TotalBillAmount, summary.UnpaidBillCount, summary.RemediationCount)
	fmt.Printf("  Fuel:               %d reorders required, %d active generators\n",
		summary.FuelReorderCount, summary.ActiveGenerators)
	return nil
}

func runScore(ctx context.Context, st store.Store) error {
	vendors := service.NewVendorService(st)
	cards, err := vendors.Scorecards(ctx)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Println("No vendors to score")
		return nil
	}

	for _, card := range cards {
		fmt.Printf("%s  score %d/15  %s\n", card.VendorName, card.TotalScore, card.OverallRating)
		for _, kpi := range card.KPIs {
			fmt.Printf("    %-24s %d/3\n", kpi.Label, kpi.Score)
		}
	}
	return nil
}

func runExport(ctx context.Context, st store.Store, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "csv", "export format: csv or xlsx")
	outDir := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	workOrders := service.NewWorkOrderService(st)
	bills := service.NewBillService(st)
	vendors := service.NewVendorService(st)
	dash := service.NewDashboardService(st)

	orders, err := workOrders.List(ctx)
	if err != nil {
		return err
	}
	ecg, err := bills.List(ctx, models.UtilityElectricity)
	if err != nil {
		return err
	}
	water, err := bills.List(ctx, models.UtilityWater)
	if err != nil {
		return err
	}
	allBills := append(ecg, water...)
	cards, err := vendors.Scorecards(ctx)
	if err != nil {
		return err
	}

	switch *format {
	case "csv":
		exports := []struct {
			name  string
			write func(f *os.File) error
		}{
			{"work_orders.csv", func(f *os.File) error { return reports.WriteWorkOrdersCSV(f, orders) }},
			{"utility_bills.csv", func(f *os.File) error { return reports.WriteBillsCSV(f, allBills) }},
			{"vendor_scorecards.csv", func(f *os.File) error { return reports.WriteScorecardsCSV(f, cards) }},
		}
		for _, e := range exports {
			path := filepath.Join(*outDir, e.name)
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := e.write(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.WithField("file", path).Info("Exported CSV")
		}
	case "xlsx":
		summary, err := dash.Summary(ctx, time.Now())
		if err != nil {
			return err
		}
		wb, err := reports.BuildSummaryWorkbook(*summary, cards, time.Now())
		if err != nil {
			return err
		}
		defer wb.Close()
		path := filepath.Join(*outDir, "facility_summary.xlsx")
		if err := wb.SaveAs(path); err != nil {
			return err
		}
		log.WithField("file", path).Info("Exported workbook")
	default:
		return fmt.Errorf("unknown export format %q", *format)
	}
	return nil
}

func runRegister(ctx context.Context, st store.Store, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "login username")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	role := fs.String("role", string(models.RoleViewer), "role: admin, manager, operator or viewer")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authService, err := auth.NewService()
	if err != nil {
		return err
	}
	users := service.NewUserService(st, authService)
	user, err := users.Register(ctx, *username, *email, *password, models.Role(*role), *firstName, *lastName)
	if err != nil {
		return err
	}
	fmt.Printf("Created user %s (%s) with role %s\n", user.Username, user.ID, user.Role)
	return nil
}
