package cli

import (
	"errors"
	"fmt"
	"strings"

	"homeo-service/internal/app/services/shared/httpclient"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/dto/responses"

	"github.com/spf13/cobra"
)

func attachRequestCommands(root *cobra.Command, app *App) {
	root.AddCommand(
		newGetCommand(app),
		newBodyCommand(app, constvars.MethodPost),
		newBodyCommand(app, constvars.MethodPut),
		newBodyCommand(app, constvars.MethodPatch),
		newDeleteCommand(app),
		newUploadCommand(app),
	)
}

func newGetCommand(app *App) *cobra.Command {
	var params []string
	cmd := &cobra.Command{
		Use:   "get <endpoint>",
		Short: "Send a GET request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseKeyValues(params)
			if err != nil {
				return err
			}
			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}
			result, err := deps.HTTPClient.Get(cmd.Context(), args[0], query)
			if err != nil {
				return err
			}
			return app.printResult(result)
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "query parameter key=value, repeatable")
	return cmd
}

func newBodyCommand(app *App, method string) *cobra.Command {
	var (
		data        string
		contentType string
		headers     []string
	)
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <endpoint>", strings.ToLower(method)),
		Short: fmt.Sprintf("Send a %s request", method),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(data, contentType, cmd.InOrStdin())
			if err != nil {
				return err
			}
			extraHeaders, err := parseHeaders(headers)
			if err != nil {
				return err
			}
			opts := []requests.RequestOption{httpclient.WithContentType(contentType)}
			for key, value := range extraHeaders {
				opts = append(opts, httpclient.WithHeader(key, value))
			}

			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}

			var result *responses.Result
			switch method {
			case constvars.MethodPost:
				result, err = deps.HTTPClient.Post(cmd.Context(), args[0], body, opts...)
			case constvars.MethodPut:
				result, err = deps.HTTPClient.Put(cmd.Context(), args[0], body, opts...)
			default:
				result, err = deps.HTTPClient.Patch(cmd.Context(), args[0], body, opts...)
			}
			if err != nil {
				return err
			}
			return app.printResult(result)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "request body, @file to read a file, - to read stdin")
	cmd.Flags().StringVar(&contentType, "content-type", constvars.MIMEApplicationJSON, "request content type, empty to send none")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "extra header 'Name: value', repeatable")
	return cmd
}

func newDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <endpoint>",
		Short: "Send a DELETE request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}
			result, err := deps.HTTPClient.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.printResult(result)
		},
	}
}

func newUploadCommand(app *App) *cobra.Command {
	var (
		fieldName string
		fields    []string
		bucket    string
		object    string
	)
	cmd := &cobra.Command{
		Use:   "upload <endpoint> [file...]",
		Short: "Upload local files, or one object from storage, as multipart form data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, paths := args[0], args[1:]
			additionalData, err := parseKeyValues(fields)
			if err != nil {
				return err
			}
			if object == "" && len(paths) == 0 {
				return errors.New("nothing to upload, pass files or --object")
			}
			if object != "" && len(paths) > 0 {
				return errors.New("pass either files or --object, not both")
			}

			deps, err := app.dependencies(cmd)
			if err != nil {
				return err
			}

			if object != "" {
				if deps.Uploader == nil {
					return errors.New("object storage is not configured")
				}
				if bucket == "" {
					bucket = deps.InternalConfig.Storage.BucketName
				}
				result, err := deps.Uploader.UploadObject(cmd.Context(), endpoint, bucket, object, additionalData, fieldName)
				if err != nil {
					return err
				}
				return app.printResult(result)
			}

			uploads := make([]requests.FileUpload, 0, len(paths))
			for _, path := range paths {
				upload, file, err := openUpload(path)
				if err != nil {
					return err
				}
				defer file.Close()
				uploads = append(uploads, upload)
			}

			var result *responses.Result
			if len(uploads) == 1 {
				result, err = deps.HTTPClient.UploadFile(cmd.Context(), endpoint, uploads[0], additionalData, fieldName)
			} else {
				result, err = deps.HTTPClient.UploadFiles(cmd.Context(), endpoint, uploads, additionalData)
			}
			if err != nil {
				return err
			}
			return app.printResult(result)
		},
	}
	cmd.Flags().StringVar(&fieldName, "field", "", "form field of a single file (default \"file\")")
	cmd.Flags().StringArrayVarP(&fields, "form", "F", nil, "additional form value key=value, repeatable")
	cmd.Flags().StringVar(&bucket, "bucket", "", "storage bucket of --object (default from config)")
	cmd.Flags().StringVar(&object, "object", "", "upload this object from storage instead of local files")
	return cmd
}
