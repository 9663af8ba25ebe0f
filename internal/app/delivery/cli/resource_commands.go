package cli

import (
	"errors"

	"homeo-service/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

func attachResourceCommands(root *cobra.Command, app *App) {
	patientsCmd := &cobra.Command{Use: "patients", Short: "Work with patients"}
	patientsCmd.AddCommand(newPatientsListCommand(app))

	appointmentsCmd := &cobra.Command{Use: "appointments", Short: "Work with appointments"}
	appointmentsCmd.AddCommand(newAppointmentsListCommand(app))

	root.AddCommand(patientsCmd, appointmentsCmd)
}

type listFlags struct {
	search   string
	page     int
	pageSize int
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "free text search")
	cmd.Flags().IntVar(&f.page, "page", 0, "page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "page size")
}

func (f *listFlags) params() map[string]any {
	params := map[string]any{}
	if f.search != "" {
		params[constvars.URLQueryParamSearch] = f.search
	}
	if f.page > 0 {
		params[constvars.URLQueryParamPage] = f.page
	}
	if f.pageSize > 0 {
		params[constvars.URLQueryParamPageSize] = f.pageSize
	}
	return params
}

func newPatientsListCommand(app *App) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}
			patients, err := deps.Patients.List(cmd.Context(), flags.params())
			if err != nil {
				return err
			}
			return app.print(patients)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newAppointmentsListCommand(app *App) *cobra.Command {
	var (
		flags     listFlags
		patientID string
		doctorID  string
		status    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments, optionally of one patient or doctor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if patientID != "" && doctorID != "" {
				return errors.New("pass either --patient or --doctor, not both")
			}
			params := flags.params()
			if status != "" {
				params[constvars.URLQueryParamStatus] = status
			}

			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch {
			case patientID != "":
				appointments, err := deps.Appointments.ListByPatient(ctx, patientID, params)
				if err != nil {
					return err
				}
				return app.print(appointments)
			case doctorID != "":
				appointments, err := deps.Appointments.ListByDoctor(ctx, doctorID, params)
				if err != nil {
					return err
				}
				return app.print(appointments)
			default:
				appointments, err := deps.Appointments.List(ctx, params)
				if err != nil {
					return err
				}
				return app.print(appointments)
			}
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&patientID, "patient", "", "patient id")
	cmd.Flags().StringVar(&doctorID, "doctor", "", "doctor id")
	cmd.Flags().StringVar(&status, "status", "", "appointment status")
	return cmd
}
